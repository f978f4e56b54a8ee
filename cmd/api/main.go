package main

import (
	"context"

	_ "workshop_visits/docs"
	"workshop_visits/internal/adapter/http/routes"
	"workshop_visits/internal/infrastructure/config"
	"workshop_visits/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

// @title           Workshop Visits API
// @version         1.0
// @description     Visit pricing and lifecycle service backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("[main] invalid configuration")
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.WithError(err).Fatal("[main] invalid logging configuration")
	}

	if err := routes.Run(context.Background(), cfg); err != nil {
		log.WithError(err).Fatal("[main] server stopped")
	}
}
