// Package http exposes the application over REST and the chat webhook. The
// server translates wire payloads into commands and queries; all business
// decisions stay behind the conversation router and the use case handlers.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"pizzahome/internal/adapters/out/catalogstore"
	"pizzahome/internal/core/application/conversation"
	"pizzahome/internal/core/application/usecases/commands"
	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/core/domain/model/order"
	"pizzahome/internal/core/domain/services"
	"pizzahome/internal/core/ports"
	"pizzahome/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// catalogAdmin is the slice of the catalog store the admin endpoints need.
type catalogAdmin interface {
	ReplaceCatalog(doc catalogstore.MenuDocument) error
	ReplaceZones(doc catalogstore.ZonesDocument) error
}

// orderReader fetches full order aggregates for read-only endpoints.
type orderReader interface {
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}

// Server coordinates between HTTP handlers and the application layer.
type Server struct {
	router *conversation.Router

	placeOrderHandler    commands.PlaceOrderCommandHandler
	recordPaymentHandler commands.RecordPaymentCommandHandler
	verifyHandler        commands.VerifyPaymentCommandHandler
	rejectHandler        commands.RejectPaymentCommandHandler
	orders               orderReader

	notifier   ports.Notifier
	dispatcher ports.RiderDispatcher
	catalogs   catalogAdmin

	adminPhone string
	uploadDir  string
}

// NewServer creates the HTTP server with its application dependencies.
func NewServer(
	router *conversation.Router,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	verifyHandler commands.VerifyPaymentCommandHandler,
	rejectHandler commands.RejectPaymentCommandHandler,
	orders orderReader,
	notifier ports.Notifier,
	dispatcher ports.RiderDispatcher,
	catalogs catalogAdmin,
	adminPhone string,
	uploadDir string,
) *Server {
	return &Server{
		router:               router,
		placeOrderHandler:    placeOrderHandler,
		recordPaymentHandler: recordPaymentHandler,
		verifyHandler:        verifyHandler,
		rejectHandler:        rejectHandler,
		orders:               orders,
		notifier:             notifier,
		dispatcher:           dispatcher,
		catalogs:             catalogs,
		adminPhone:           adminPhone,
		uploadDir:            uploadDir,
	}
}

// Register attaches all routes to the echo instance. Admin endpoints go
// behind the given middleware.
func (s *Server) Register(e *echo.Echo, adminAuth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)
	e.POST("/webhook/whatsapp", s.WhatsAppWebhook)
	e.POST("/webhook/payment", s.PaymentWebhook)
	e.POST("/order/create", s.CreateOrder)
	e.POST("/upload/screenshot", s.UploadScreenshot)
	e.GET("/uploads/:filename", s.ServeUpload)
	e.POST("/rider/notify", s.NotifyRider)

	admin := e.Group("", adminAuth)
	admin.POST("/order/verify", s.VerifyOrder)
	admin.POST("/menu/upload", s.UploadMenu)
	admin.POST("/delivery/upload", s.UploadDeliveryZones)
}

// Health reports liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

type whatsAppPayload struct {
	From     string `json:"from"`
	Type     string `json:"type"`
	Text     string `json:"text"`
	Location *struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

// WhatsAppWebhook receives one inbound chat message, routes it and relays the
// replies back to the sender.
func (s *Server) WhatsAppWebhook(ctx echo.Context) error {
	var payload whatsAppPayload
	if err := ctx.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if payload.From == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "no sender id")
	}

	msg := conversation.Inbound{Sender: payload.From, Text: payload.Text}
	if payload.Location != nil {
		point, err := kernel.NewGeoPoint(payload.Location.Lat, payload.Location.Lng)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid location")
		}
		msg.Location = &point
	}

	replies, err := s.router.Handle(ctx.Request().Context(), msg)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "routing failed")
	}

	for _, reply := range replies {
		_ = s.notifier.Send(ctx.Request().Context(), payload.From, reply)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type createOrderRequest struct {
	CustomerPhone string          `json:"customer_phone"`
	CustomerName  string          `json:"customer_name"`
	Items         []orderItemBody `json:"items"`
	PaymentMethod string          `json:"payment_method"`
	DeliveryFee   int             `json:"delivery_charges"`
	Address       string          `json:"address"`
	Lat           *float64        `json:"lat"`
	Lng           *float64        `json:"lng"`
}

type orderItemBody struct {
	Name  string `json:"name"`
	Size  string `json:"size"`
	Price int    `json:"price"`
	Qty   int    `json:"qty"`
}

// CreateOrder is the dashboard/POS entry point for placing orders outside the
// chat flow.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	lines := make([]order.Line, 0, len(req.Items))
	for _, item := range req.Items {
		qty := item.Qty
		if qty == 0 {
			qty = 1
		}
		line, err := order.NewLine(item.Name, menu.Size(item.Size), item.Price, qty)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid item: "+err.Error())
		}
		lines = append(lines, line)
	}

	var coords *kernel.GeoPoint
	if req.Lat != nil && req.Lng != nil {
		point, err := kernel.NewGeoPoint(*req.Lat, *req.Lng)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid coordinates")
		}
		coords = &point
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewOrderID(), req.CustomerPhone,
		req.CustomerName, lines, req.DeliveryFee, req.Address, coords, "",
		order.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create order")
	}

	reqCtx := ctx.Request().Context()
	_ = s.notifier.Send(reqCtx, placed.CustomerPhone(),
		fmt.Sprintf("Order %s received. Total Rs %d. ETA ~45 minutes.", placed.ID(), placed.Total()))
	s.dispatcher.Schedule(services.RiderSummary(placed))

	return ctx.JSON(http.StatusCreated, map[string]any{
		"order_id": placed.ID().String(),
		"total":    placed.Total(),
	})
}

// UploadScreenshot stores a payment screenshot and moves the order into the
// verification flow. Form fields: order_id, phone, file.
func (s *Server) UploadScreenshot(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.FormValue("order_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}
	phone := ctx.FormValue("phone")

	file, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file missing")
	}

	savePath := filepath.Join(s.uploadDir, orderID.String()+"_"+sanitizeFilename(file.Filename))
	if err = s.saveUpload(file, savePath); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store file")
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, order.PaymentPending, savePath)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reqCtx := ctx.Request().Context()
	if _, err = s.recordPaymentHandler.Handle(reqCtx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record payment")
	}

	_ = s.notifier.Send(reqCtx, s.adminPhone,
		fmt.Sprintf("Payment screenshot uploaded for %s by %s. Please verify. Screenshot path: %s",
			orderID, phone, savePath))
	if phone != "" {
		_ = s.notifier.Send(reqCtx, phone,
			"Thanks, we received your screenshot. We will verify and confirm your order shortly.")
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "uploaded"})
}

// ServeUpload returns a previously stored screenshot.
func (s *Server) ServeUpload(ctx echo.Context) error {
	name := sanitizeFilename(ctx.Param("filename"))
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filename")
	}
	return ctx.File(filepath.Join(s.uploadDir, name))
}

type verifyRequest struct {
	OrderID  string `json:"order_id"`
	Verified bool   `json:"verified"`
}

// VerifyOrder is the manual admin decision on an uploaded screenshot.
func (s *Server) VerifyOrder(ctx echo.Context) error {
	var req verifyRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	orderID, err := kernel.OrderIDFromString(req.OrderID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}

	reqCtx := ctx.Request().Context()
	if req.Verified {
		cmd, cmdErr := commands.NewVerifyPaymentCommand(orderID)
		if cmdErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, cmdErr.Error())
		}
		if err = s.verifyHandler.Handle(reqCtx, cmd); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "order not found")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to verify order")
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "verified"})
	}

	cmd, cmdErr := commands.NewRejectPaymentCommand(orderID)
	if cmdErr != nil {
		return echo.NewHTTPError(http.StatusBadRequest, cmdErr.Error())
	}
	if err = s.rejectHandler.Handle(reqCtx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to reject order")
	}
	return ctx.JSON(http.StatusOK, map[string]string{"status": "failed"})
}

type paymentWebhookPayload struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// PaymentWebhook handles gateway callbacks for auto-confirmed transfers.
// Anything but "paid" is acknowledged and ignored.
func (s *Server) PaymentWebhook(ctx echo.Context) error {
	var payload paymentWebhookPayload
	if err := ctx.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if payload.Status != string(order.PaymentPaid) {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}

	orderID, err := kernel.OrderIDFromString(payload.OrderID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, order.PaymentPaid, "")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reqCtx := ctx.Request().Context()
	updated, err := s.recordPaymentHandler.Handle(reqCtx, cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record payment")
	}

	_ = s.notifier.Send(reqCtx, updated.CustomerPhone(),
		fmt.Sprintf("Payment received for %s. Your order will be delivered in ~45 minutes.", updated.ID()))
	s.dispatcher.Schedule(services.RiderSummary(updated))

	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type riderNotifyRequest struct {
	OrderID string `json:"order_id"`
}

// NotifyRider re-sends the rider summary for an existing order.
func (s *Server) NotifyRider(ctx echo.Context) error {
	var req riderNotifyRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	orderID, err := kernel.OrderIDFromString(req.OrderID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing order")
	}

	aggregate, err := s.orders.Get(ctx.Request().Context(), orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "lookup failed")
	}

	s.dispatcher.Schedule(services.RiderSummary(aggregate))
	return ctx.JSON(http.StatusOK, map[string]string{"status": "notifying"})
}

// UploadMenu overwrites the menu with the uploaded document.
func (s *Server) UploadMenu(ctx echo.Context) error {
	var doc catalogstore.MenuDocument
	if err := ctx.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing menu body")
	}
	if err := s.catalogs.ReplaceCatalog(doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ctx.JSON(http.StatusOK, map[string]string{"status": "menu saved"})
}

// UploadDeliveryZones overwrites the delivery zone table.
func (s *Server) UploadDeliveryZones(ctx echo.Context) error {
	var doc catalogstore.ZonesDocument
	if err := ctx.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing body")
	}
	if err := s.catalogs.ReplaceZones(doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ctx.JSON(http.StatusOK, map[string]string{"status": "delivery saved"})
}

func (s *Server) saveUpload(file *multipart.FileHeader, path string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// sanitizeFilename strips directory components so uploads cannot escape the
// upload directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	return name
}
