package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"autoshop/cmd"
	httpin "autoshop/internal/adapters/in/http"
	"autoshop/internal/adapters/out/postgres/carrepo"
	"autoshop/internal/adapters/out/postgres/orderitemrepo"
	"autoshop/internal/adapters/out/postgres/orderrepo"
	"autoshop/internal/adapters/out/postgres/userrepo"
	"autoshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultPurgeRetention = 30 * 24 * time.Hour

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)
	seedUsers(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreatePurgeDeletedOrdersCommandHandler(),
		configs.PurgeRetention,
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		PurgeRetention: defaultPurgeRetention,
	}
	if retention, err := time.ParseDuration(os.Getenv("PURGE_RETENTION")); err == nil && retention > 0 {
		config.PurgeRetention = retention
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&carrepo.CarDTO{},
		&orderrepo.OrderDTO{},
		&orderitemrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

// seedUsers inserts a few users on an empty database. User management lives
// outside this service, but the API is unusable without any users at all.
func seedUsers(db *gorm.DB) {
	var count int64
	if err := db.Model(&userrepo.UserDTO{}).Count(&count).Error; err != nil {
		log.Fatalf("Error counting users: %v", err)
	}
	if count > 0 {
		return
	}

	users := []userrepo.UserDTO{
		{Email: "alice@example.com"},
		{Email: "bob@example.com"},
		{Email: "carol@example.com"},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("Error seeding users: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateAddCarCommandHandler(),
		app.CreateTransferCarOwnershipCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderSummaryQueryHandler(),
		app.CreateGetUserOrdersQueryHandler(),
		app.CreateGetUserCarsQueryHandler(),
		app.CreateGetAllUsersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
