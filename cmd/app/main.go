package main

import (
	"fmt"
	"log/slog"
	"os"

	"pizzahome/cmd"
	httpadapter "pizzahome/internal/adapters/in/http"
	"pizzahome/internal/adapters/out/catalogstore"
	"pizzahome/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)

	catalogs, err := catalogstore.NewStore(configs.MenuFile, configs.ZonesFile, logger)
	if err != nil {
		log.Fatalf("Error loading catalog files: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, catalogs, logger)
	defer app.CloseDispatcher()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		RiderPhone: goDotEnvVariable("RIDER_PHONE"),
		AdminPhone: goDotEnvVariable("ADMIN_PHONE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		MenuFile:   goDotEnvVariable("MENU_FILE"),
		ZonesFile:  goDotEnvVariable("ZONES_FILE"),
		UploadDir:  goDotEnvVariable("UPLOAD_DIR"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.Register(e, httpadapter.AdminAuth(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
