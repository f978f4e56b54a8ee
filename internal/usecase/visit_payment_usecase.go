package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrVisitPaymentNotFound           = errors.New("visit payment not found")
	ErrInvalidPaymentVisitID          = errors.New("invalid visit_id")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrVisitNotBillable               = errors.New("visit is not ready to be charged")
	ErrNothingToCharge                = errors.New("visit has no billable services")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IVisitPaymentUseCase charges a visit's billable total.
//
// Only APPROVED and CONFIRMED lines are charged, and only once the visit is
// READY_FOR_PICKUP or COMPLETED.
type IVisitPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, studioID, visitID string, mpPayload json.RawMessage) (entities.VisitPayment, error)
	GetByID(ctx context.Context, id string) (entities.VisitPayment, error)
	ListByVisitID(ctx context.Context, visitID string) ([]entities.VisitPayment, error)
}

// PaymentSettings controls how payments reach the provider.
type PaymentSettings struct {
	// Mock skips the provider and records an approved payment.
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (s PaymentSettings) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(s.AccessToken), "TEST-")
}

type VisitPaymentUseCase struct {
	repo     interfaces.IVisitPaymentRepository
	visits   interfaces.IVisitRepository
	gateway  interfaces.IPaymentGateway
	clock    interfaces.IClock
	settings PaymentSettings
}

var _ IVisitPaymentUseCase = (*VisitPaymentUseCase)(nil)

func NewVisitPaymentUseCase(
	repo interfaces.IVisitPaymentRepository,
	visits interfaces.IVisitRepository,
	gateway interfaces.IPaymentGateway,
	clock interfaces.IClock,
	settings PaymentSettings,
) *VisitPaymentUseCase {
	return &VisitPaymentUseCase{repo: repo, visits: visits, gateway: gateway, clock: clock, settings: settings}
}

func (u *VisitPaymentUseCase) CreateAndApprove(ctx context.Context, studioID, visitID string, mpPayload json.RawMessage) (entities.VisitPayment, error) {
	studioID = strings.TrimSpace(studioID)
	visitID = strings.TrimSpace(visitID)
	logger := log.WithFields(log.Fields{"studio_id": studioID, "visit_id": visitID, "payload_len": len(mpPayload)})
	logger.Info("[payment][usecase] create-and-approve start")
	mockMode := u.settings.Mock

	if studioID == "" {
		return entities.VisitPayment{}, ErrInvalidStudioID
	}
	if visitID == "" {
		logger.Warn("[payment][usecase] invalid visit_id (empty)")
		return entities.VisitPayment{}, ErrInvalidPaymentVisitID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			logger.Warn("[payment][usecase] invalid payload (empty or not-json)")
			return entities.VisitPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		logger.Error("[payment][usecase] gateway not configured")
		return entities.VisitPayment{}, ErrPaymentGatewayNotConfigured
	}

	visit, err := u.visits.FindByID(ctx, visitID, studioID)
	if err != nil {
		logger.WithError(err).Error("[payment][usecase] failed loading visit")
		return entities.VisitPayment{}, err
	}
	if visit.ID() == "" {
		logger.Warn("[payment][usecase] visit not found")
		return entities.VisitPayment{}, &entities.NotFoundError{Entity: "visit", ID: visitID}
	}
	if s := visit.Status(); s != entities.VisitReadyForPickup && s != entities.VisitCompleted {
		logger.WithField("status", s).Warn("[payment][usecase] visit not billable")
		return entities.VisitPayment{}, ErrVisitNotBillable
	}
	total := visit.CalculateTotalGross()
	if total.IsZero() {
		logger.Warn("[payment][usecase] nothing to charge")
		return entities.VisitPayment{}, ErrNothingToCharge
	}
	amount := decimal.New(total.Cents(), -2)
	logger = logger.WithFields(log.Fields{"status": visit.Status(), "amount": amount.StringFixed(2)})
	logger.Info("[payment][usecase] visit loaded")

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if reqMap == nil {
			reqMap = map[string]any{}
		}
		if !mockMode {
			if err := u.normalizeChargeRequest(reqMap); err != nil {
				logger.WithError(err).Warn("[payment][usecase] payload rejected")
				return entities.VisitPayment{}, err
			}
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = visitID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Visit %s", visit.VisitNumber())
		}

		// The amount always comes from the stored visit, never from the caller.
		reqMap["transaction_amount"] = amount.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		if !mockMode {
			logger.WithError(err).Warn("[payment][usecase] payload is not an object")
			return entities.VisitPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}

	now := u.clock.Now()
	var (
		providerPaymentID string
		providerResp      json.RawMessage
		status            = entities.PaymentStatusApproved
	)
	if mockMode {
		logger.Info("[payment][usecase] mock mode enabled; skipping external payment gateway")
		providerPaymentID = strconv.FormatInt(now.UnixNano(), 10)
		stamp := now.Format(time.RFC3339Nano)
		reqMap["id"] = providerPaymentID
		reqMap["status"] = "approved"
		reqMap["status_detail"] = "accredited"
		reqMap["date_created"] = stamp
		reqMap["date_approved"] = stamp
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = visitID
		}
		reqMap["transaction_amount"] = amount.InexactFloat64()
		b, mErr := json.Marshal(reqMap)
		if mErr != nil {
			return entities.VisitPayment{}, mErr
		}
		providerResp = b
	} else {
		var providerStatus string
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			logger.WithError(err).Error("[payment][usecase] payment gateway failed")
			return entities.VisitPayment{}, classifyGatewayError(err)
		}
		logger.WithFields(log.Fields{"provider_payment_id": providerPaymentID, "provider_status": providerStatus}).Info("[payment][usecase] payment gateway success")
		status = paymentStatusFromProvider(providerStatus)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		logger.WithError(err).Warn("[payment][usecase] provider response unmarshal failed")
	}

	p := entities.VisitPayment{
		ID:                 providerPaymentID,
		VisitID:            visitID,
		StudioID:           studioID,
		AmountGross:        total,
		Date:               now,
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logger.WithError(err).WithField("payment_id", p.ID).Error("[payment][usecase] payment repository create failed")
		return entities.VisitPayment{}, err
	}
	logger.WithFields(log.Fields{"payment_id": created.ID, "payment_status": created.Status}).Info("[payment][usecase] create-and-approve success")
	return created, nil
}

func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

// gatewayFailures are matched in order against the lowercased provider
// error; provider codes win over the bare HTTP status.
var gatewayFailures = []struct {
	err     error
	markers []string
}{
	{ErrPaymentGatewayCustomerNotFound, []string{"customer not found", `"code":2002`}},
	{ErrPaymentGatewayInvalidUsers, []string{"invalid users involved", `"code":2034`}},
	{ErrPaymentGatewayUnauthorized, []string{`"error":"unauthorized"`, `"status":401`}},
	{ErrPaymentGatewayBadRequest, []string{`"error":"bad_request"`, `"status":400`}},
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	for _, f := range gatewayFailures {
		for _, marker := range f.markers {
			if strings.Contains(msg, marker) {
				return f.err
			}
		}
	}
	return err
}

const sandboxPayerEmail = "test_user_br@testuser.com"

// normalizeChargeRequest checks the caller's request in place and settles who
// pays. A payer is identified by email or id. In sandbox the configured test
// user id is swapped for its email, and a payer without either falls back to
// the configured test email.
func (u *VisitPaymentUseCase) normalizeChargeRequest(req map[string]any) error {
	if textField(req, "payment_method_id") == "" {
		return fmt.Errorf("%w: missing payment_method_id", ErrInvalidMPPayload)
	}

	payer, isObject := req["payer"].(map[string]any)
	switch {
	case req["payer"] == nil:
		payer = map[string]any{}
		req["payer"] = payer
	case !isObject:
		return fmt.Errorf("%w: payer must be an object", ErrInvalidMPPayload)
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	id, email := payerUserID(payer), textField(payer, "email")
	testUserID := strings.TrimSpace(u.settings.TestPayerUserID)
	testEmail := strings.TrimSpace(u.settings.TestPayerEmail)
	switch {
	case email != "":
	case id != "" && u.settings.sandbox() && id == testUserID && testEmail != "":
		payer["email"] = testEmail
		delete(payer, "id")
		log.Debug("[payment][usecase] sandbox payer id replaced by its email")
	case id != "":
	case testEmail != "":
		payer["email"] = testEmail
	case u.settings.sandbox():
		payer["email"] = sandboxPayerEmail
	default:
		return fmt.Errorf("%w: payer needs an email or id", ErrInvalidMPPayload)
	}
	return nil
}

// textField is the trimmed string at key, or "" for anything else.
func textField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// payerUserID accepts numeric and string ids alike.
func payerUserID(payer map[string]any) string {
	switch id := payer["id"].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(id))
	}
}

func (u *VisitPaymentUseCase) GetByID(ctx context.Context, id string) (entities.VisitPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.VisitPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.VisitPayment{}, err
	}
	if p.ID == "" {
		return entities.VisitPayment{}, ErrVisitPaymentNotFound
	}
	return p, nil
}

func (u *VisitPaymentUseCase) ListByVisitID(ctx context.Context, visitID string) ([]entities.VisitPayment, error) {
	visitID = strings.TrimSpace(visitID)
	if visitID == "" {
		return nil, ErrInvalidPaymentVisitID
	}
	return u.repo.ListByVisitID(ctx, visitID)
}
