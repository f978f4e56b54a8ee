package interfaces

import (
	"context"

	"workshop_visits/internal/domain/entities"
)

// IVisitPaymentRepository abstracts DynamoDB persistence for VisitPayment.

type IVisitPaymentRepository interface {
	Create(ctx context.Context, p entities.VisitPayment) (entities.VisitPayment, error)
	GetByID(ctx context.Context, id string) (entities.VisitPayment, error)
	ListByVisitID(ctx context.Context, visitID string) ([]entities.VisitPayment, error)
}
