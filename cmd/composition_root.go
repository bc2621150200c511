package cmd

import (
	"log/slog"
	"time"

	httpadapter "pizzahome/internal/adapters/in/http"
	"pizzahome/internal/adapters/out/catalogstore"
	"pizzahome/internal/adapters/out/dispatch"
	"pizzahome/internal/adapters/out/postgres"
	"pizzahome/internal/adapters/out/whatsapp"
	"pizzahome/internal/core/application/conversation"
	"pizzahome/internal/core/application/usecases/commands"
	"pizzahome/internal/core/application/usecases/queries"
	"pizzahome/internal/core/domain/model/session"
	"pizzahome/internal/jobs"

	"gorm.io/gorm"
)

// Orders older than this in awaiting_payment get a reminder.
const paymentReminderAfter = 15 * time.Minute

const riderDispatchWorkers = 2
const riderDispatchQueueSize = 64

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sessions   *session.Store
	catalogs   *catalogstore.Store
	notifier   *whatsapp.StubNotifier
	dispatcher *dispatch.RiderDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, catalogs *catalogstore.Store, logger *slog.Logger) CompositionRoot {
	notifier := whatsapp.NewStubNotifier(logger)
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessions:   session.NewStore(),
		catalogs:   catalogs,
		notifier:   notifier,
		dispatcher: dispatch.NewRiderDispatcher(notifier, config.RiderPhone,
			riderDispatchWorkers, riderDispatchQueueSize, logger),
		logger: logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyPaymentCommandHandler() commands.VerifyPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyPaymentCommandHandler(f, c.notifier, c.dispatcher)
}

func (c *CompositionRoot) CreateRejectPaymentCommandHandler() commands.RejectPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectPaymentCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleAwaitingPaymentQueryHandler() queries.GetStaleAwaitingPaymentQueryHandler {
	return queries.NewGetStaleAwaitingPaymentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateConversationRouter() *conversation.Router {
	return conversation.NewRouter(
		c.sessions,
		c.catalogs,
		c.catalogs,
		c.CreatePlaceOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.dispatcher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateConversationRouter(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateRecordPaymentCommandHandler(),
		c.CreateVerifyPaymentCommandHandler(),
		c.CreateRejectPaymentCommandHandler(),
		c.uowFactory.Create().OrderRepository(),
		c.notifier,
		c.dispatcher,
		c.catalogs,
		c.config.AdminPhone,
		c.config.UploadDir,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetStaleAwaitingPaymentQueryHandler(),
		c.notifier,
		paymentReminderAfter,
		c.logger,
	)
}

// CloseDispatcher drains pending rider notifications before shutdown.
func (c *CompositionRoot) CloseDispatcher() {
	c.dispatcher.Close()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
