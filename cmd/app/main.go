package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoswagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"deliveryapi/cmd"
	_ "deliveryapi/docs"
	httpin "deliveryapi/internal/adapters/in/http"
	"deliveryapi/internal/adapters/out/postgres/customerrepo"
	"deliveryapi/internal/adapters/out/postgres/orderrepo"
	"deliveryapi/internal/adapters/out/postgres/productrepo"
	"deliveryapi/internal/adapters/out/postgres/restaurantrepo"
	"deliveryapi/internal/jobs"
)

//	@title			Delivery API
//	@version		1.0
//	@description	REST API for managing customers, restaurants, products, and orders.
//	@BasePath		/api

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB)

	orderService := root.CreateOrderService()
	server := httpin.NewServer(
		root.CreateCustomerService(),
		root.CreateRestaurantService(),
		root.CreateProductService(),
		orderService,
	)

	jobManager := jobs.NewJobManager(orderService, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(server, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&restaurantrepo.RestaurantDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

func startWebServer(server *httpin.Server, port string) {
	e := echo.New()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())

	server.RegisterRoutes(e)
	e.GET("/swagger/*", echoswagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
