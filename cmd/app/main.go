package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"orders/cmd"
	orderhttp "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/rabbitmq"
	"orders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	channel := mustConnectBroker(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		rabbitmq.NewPublisher(channel, logger),
		logger,
	)

	ctx := context.Background()

	consumer := rabbitmq.NewConsumer(channel, app.CreateTransitionOrderCommandHandler(), logger)
	if err := consumer.Start(ctx); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateListOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL: goDotEnvVariable("RABBITMQ_URL"),
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

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func mustConnectBroker(configs cmd.Config) *amqp.Channel {
	conn, err := amqp.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open RabbitMQ channel: %v", err)
	}

	if err := rabbitmq.DeclareTopology(channel); err != nil {
		log.Fatalf("Failed to declare RabbitMQ topology: %v", err)
	}

	return channel
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := orderhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
