package routes

import (
	"context"
	"strconv"

	_ "workshop_visits/docs"
	"workshop_visits/internal/adapter/http/handlers"
	"workshop_visits/internal/adapter/persistence/repository"
	"workshop_visits/internal/infrastructure/config"
	"workshop_visits/internal/infrastructure/database"
	"workshop_visits/internal/infrastructure/payments"
	"workshop_visits/internal/infrastructure/runtime"
	"workshop_visits/internal/usecase"
	"workshop_visits/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the service against DynamoDB and Mercado Pago and starts serving.
func Run(ctx context.Context, cfg config.Config) error {
	gin.SetMode(cfg.GinMode)

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "connect dynamodb")
	}

	visitRepo := repository.NewVisitDynamoRepository(ddb, cfg.Visits, cfg.VisitCounters, cfg.Customers)
	paymentRepo := repository.NewVisitPaymentDynamoRepository(ddb, cfg.Payments)
	clock := runtime.SystemClock{}

	visitUseCase := usecase.NewVisitUseCase(usecase.VisitUseCaseDeps{
		Visits:       visitRepo,
		Catalog:      repository.NewServiceCatalogDynamoRepository(ddb, cfg.Services),
		Appointments: repository.NewAppointmentDynamoRepository(ddb, cfg.Appointments),
		Vehicles:     repository.NewVehicleDynamoRepository(ddb, cfg.Vehicles),
		Customers:    repository.NewCustomerDynamoRepository(ddb, cfg.Customers),
		Colors:       repository.NewVehicleColorDynamoRepository(ddb, cfg.VehicleColors),
		IDs:          runtime.UUIDGenerator{},
		Clock:        clock,
	})

	var paymentGateway interfaces.IPaymentGateway
	if !cfg.PaymentGatewayMock {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.WithError(err).Warn("[payment][routes] Mercado Pago gateway not configured")
		} else {
			paymentGateway = mpGateway
		}
	} else {
		log.Info("[payment][routes] payment gateway mock mode enabled")
	}

	paymentUseCase := usecase.NewVisitPaymentUseCase(paymentRepo, visitRepo, paymentGateway, clock, usecase.PaymentSettings{
		Mock:            cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	})

	router := NewRouter(handlers.NewVisitHandler(visitUseCase), handlers.NewVisitPaymentHandler(paymentUseCase))

	addr := ":" + strconv.Itoa(cfg.HTTPPort)
	log.WithField("addr", addr).Info("[http][routes] listening")
	if err := router.Run(addr); err != nil {
		return errors.Wrap(err, "failed to startup the application")
	}
	return nil
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(visitHandler *handlers.VisitHandler, paymentHandler *handlers.VisitPaymentHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addVisitRoutes(v1, visitHandler)
	addPaymentRoutes(v1, paymentHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", recovered).Error("[http][routes] recovered from panic")
		c.AbortWithStatus(500)
	}))
}
