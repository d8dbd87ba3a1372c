package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"shiprates/cmd"
	_ "shiprates/docs"
	httpin "shiprates/internal/adapters/in/http"
	"shiprates/internal/adapters/out/postgres/configrepo"
	"shiprates/internal/generated/servers"
	"shiprates/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	root, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load the configuration snapshot before serving; quoting without one
	// can only fail.
	if err := root.SettingsCache().Refresh(context.Background()); err != nil {
		log.Fatalf("Failed to load rating configuration: %v", err)
	}

	jobManager := jobs.NewJobManager(root.CreateRefreshRateConfigCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		FedexBaseURL:       goDotEnvVariable("FEDEX_BASE_URL"),
		FedexClientID:      goDotEnvVariable("FEDEX_CLIENT_ID"),
		FedexClientSecret:  goDotEnvVariable("FEDEX_CLIENT_SECRET"),
		FedexAccountNumber: goDotEnvVariable("FEDEX_ACCOUNT_NUMBER"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&configrepo.RateSettingsDTO{},
		&configrepo.BoxTypeDTO{},
		&configrepo.LeadTimeDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(root cmd.CompositionRoot, port string) {
	// The embedded contract must stay loadable; failing fast here catches a
	// broken regeneration before any traffic does.
	if _, err := servers.GetSwagger(); err != nil {
		log.Fatalf("Invalid OpenAPI specification: %v", err)
	}

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpin.NewServer(root.CreateGetShippingOptionsQueryHandler())
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
