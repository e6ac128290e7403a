package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"ewaste/cmd"
	httpadapter "ewaste/internal/adapters/in/http"
	"ewaste/internal/adapters/out/osrm"
	"ewaste/internal/adapters/out/postgres/agentrepo"
	"ewaste/internal/adapters/out/postgres/pickuprepo"
	"ewaste/internal/generated/servers"
	"ewaste/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStalePickupAfterDays = 14

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	routeSolver, err := osrm.NewClient(configs.OsrmBaseURL)
	if err != nil {
		log.Fatalf("Error creating route solver: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, routeSolver)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStalePickupsCommandHandler(),
		stalePickupAfter(configs),
		slog.Default(),
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		OsrmBaseURL:          goDotEnvVariable("OSRM_BASE_URL"),
		StalePickupAfterDays: goDotEnvVariable("STALE_PICKUP_AFTER_DAYS"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&pickuprepo.PickupRequestDTO{}, &agentrepo.AgentDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func stalePickupAfter(configs cmd.Config) time.Duration {
	days := defaultStalePickupAfterDays
	if configs.StalePickupAfterDays != "" {
		parsed, err := strconv.Atoi(configs.StalePickupAfterDays)
		if err != nil || parsed <= 0 {
			log.Fatalf("Invalid STALE_PICKUP_AFTER_DAYS: %q", configs.StalePickupAfterDays)
		}
		days = parsed
	}

	return time.Duration(days) * 24 * time.Hour
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreatePickupRequestCommandHandler(),
		app.CreateAcceptPickupCommandHandler(),
		app.CreateCompletePickupCommandHandler(),
		app.CreateCancelPickupCommandHandler(),
		app.CreateRegisterAgentCommandHandler(),
		app.CreateSetAgentActivationCommandHandler(),
		app.CreateGetAvailablePickupsQueryHandler(),
		app.CreateGetAgentPickupsQueryHandler(),
		app.CreateGetOptimizedRouteQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
