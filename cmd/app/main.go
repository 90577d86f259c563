package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"

	"epicerie/cmd"
	gatewayhttp "epicerie/internal/adapters/in/http"
	"epicerie/internal/adapters/out/postgres/livreursnapshot"
	"epicerie/internal/adapters/out/postgres/ordersnapshot"
	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	startJobs(&app, configs)
	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	epicerieID, err := strconv.ParseInt(goDotEnvVariable("EPICERIE_ID"), 10, 64)
	if err != nil {
		log.Fatalf("Invalid EPICERIE_ID: %v", err)
	}

	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		MarketAPIBaseURL: goDotEnvVariable("MARKET_API_BASE_URL"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		ServiceToken:     goDotEnvVariable("SERVICE_TOKEN"),
		EpicerieID:       epicerieID,
		RefreshSchedule:  goDotEnvVariable("REFRESH_SCHEDULE"),
	}
	if config.RefreshSchedule == "" {
		config.RefreshSchedule = "0 */5 * * * *"
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
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&ordersnapshot.OrderSnapshotDTO{},
		&livreursnapshot.LivreurPoolDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) {
	epicerieID, err := kernel.NewID(configs.EpicerieID)
	if err != nil {
		log.Fatalf("Invalid épicerie id: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateRefreshSnapshotsCommandHandler(),
		epicerieID,
		configs.ServiceToken,
		configs.RefreshSchedule,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := gatewayhttp.NewServer(
		app.CreateRequestTransitionCommandHandler(),
		app.CreateAssignLivreurCommandHandler(),
		app.CreateUnassignLivreurCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetMyOrdersQueryHandler(),
		app.CreateListUnassignedLivreursQueryHandler(),
		app.CreateListAssignedLivreursQueryHandler(),
		app.CreateGetCachedOrderSummariesQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e, configs.JWTSecret)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
