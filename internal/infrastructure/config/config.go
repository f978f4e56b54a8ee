// Package config loads the service settings from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	HTTPPort int    `envconfig:"HTTP_PORT" default:"8080"`
	GinMode  string `envconfig:"GIN_MODE" default:"release"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	Tables

	MercadoPagoAccessToken     string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayerEmail  string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	MercadoPagoTestPayerUserID string `envconfig:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	PaymentGatewayMock         bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
}

// Tables names every DynamoDB table the service touches.
type Tables struct {
	Visits        string `envconfig:"VISITS_TABLE" default:"visits"`
	VisitCounters string `envconfig:"VISIT_COUNTERS_TABLE" default:"visit_counters"`
	Payments      string `envconfig:"PAYMENTS_TABLE" default:"visit_payments"`
	Services      string `envconfig:"SERVICES_TABLE" default:"services"`
	Appointments  string `envconfig:"APPOINTMENTS_TABLE" default:"appointments"`
	Vehicles      string `envconfig:"VEHICLES_TABLE" default:"vehicles"`
	Customers     string `envconfig:"CUSTOMERS_TABLE" default:"customers"`
	VehicleColors string `envconfig:"VEHICLE_COLORS_TABLE" default:"vehicle_colors"`
}

// Load reads the configuration. Unset variables take their defaults.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse env")
	}
	return c, nil
}
