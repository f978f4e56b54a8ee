package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "workshop_visits/internal/adapter/http/dto/response"
	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase"
	"workshop_visits/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var errPaymentNotFound = pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)

// VisitPaymentHandler handles HTTP requests for visit payments.
type VisitPaymentHandler struct {
	usecase usecase.IVisitPaymentUseCase
}

func NewVisitPaymentHandler(uc usecase.IVisitPaymentUseCase) *VisitPaymentHandler {
	return &VisitPaymentHandler{usecase: uc}
}

// CreatePaymentByVisitID godoc
// @Summary      Charge a visit's billable total
// @Description  Accepts either {"mp_payload": {...}} or a bare Mercado Pago payment request.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Studio-ID  header  string                             true  "Studio"
// @Param        visit_id     path    string                             true  "Visit ID"
// @Param        body         body    request.VisitPaymentCreateRequest  false "Mercado Pago payload"
// @Success      200  {object}  response.VisitPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payments/{visit_id} [post]
func (h *VisitPaymentHandler) CreatePaymentByVisitID(c *gin.Context) {
	studioID, _, ok := callerOf(c)
	if !ok {
		return
	}
	visitID := c.Param("visit_id")
	logger := log.WithFields(log.Fields{"studio_id": studioID, "visit_id": visitID})
	logger.Info("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		// The use case decides whether an unreadable payload is fatal.
		logger.WithError(err).Warn("[payment][handler] unreadable payload")
		mpPayload = nil
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), studioID, visitID, mpPayload)
	if err != nil {
		logger.WithError(err).Warn("[payment][handler] create failed")
		respondError(c, mapVisitPaymentError(err))
		return
	}
	logger.WithFields(log.Fields{"payment_id": created.ID, "status": created.Status}).Info("[payment][handler] create success")

	c.JSON(http.StatusOK, response.FromVisitPayment(created))
}

// GetPaymentByVisitID godoc
// @Summary      Latest payment of a visit
// @Tags         payments
// @Produce      json
// @Param        X-Studio-ID  header  string  true  "Studio"
// @Param        visit_id     path    string  true  "Visit ID"
// @Success      200  {object}  response.VisitPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{visit_id} [get]
func (h *VisitPaymentHandler) GetPaymentByVisitID(c *gin.Context) {
	studioID, _, ok := callerOf(c)
	if !ok {
		return
	}
	visitID := c.Param("visit_id")

	payments, err := h.usecase.ListByVisitID(c.Request.Context(), visitID)
	if err != nil {
		respondError(c, mapVisitPaymentError(err))
		return
	}

	var latest *entities.VisitPayment
	for i := range payments {
		p := payments[i]
		if p.StudioID != studioID {
			continue
		}
		if latest == nil || p.Date.After(latest.Date) {
			latest = &p
		}
	}
	if latest == nil {
		log.WithFields(log.Fields{"studio_id": studioID, "visit_id": visitID}).Info("[payment][handler] no payment for visit")
		respondError(c, errPaymentNotFound)
		return
	}

	c.JSON(http.StatusOK, response.FromVisitPayment(*latest))
}

// GetPaymentByID godoc
// @Summary      One payment of a visit
// @Tags         payments
// @Produce      json
// @Param        X-Studio-ID  header  string  true  "Studio"
// @Param        visit_id     path    string  true  "Visit ID"
// @Param        payment_id   path    string  true  "Payment ID"
// @Success      200  {object}  response.VisitPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{visit_id}/{payment_id} [get]
func (h *VisitPaymentHandler) GetPaymentByID(c *gin.Context) {
	studioID, _, ok := callerOf(c)
	if !ok {
		return
	}

	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		respondError(c, mapVisitPaymentError(err))
		return
	}
	if p.StudioID != studioID || p.VisitID != c.Param("visit_id") {
		respondError(c, errPaymentNotFound)
		return
	}

	c.JSON(http.StatusOK, response.FromVisitPayment(p))
}

// readMPPayload accepts the {"mp_payload": ...} envelope or a bare payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapVisitPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStudioID), errors.Is(err, usecase.ErrInvalidPaymentVisitID),
		errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("VISIT_NOT_FOUND", "Visit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVisitNotBillable):
		return pkg.NewDomainErrorSimple("VISIT_NOT_BILLABLE", "Visit is not ready to be charged", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Visit has no approved services", http.StatusConflict)
	case errors.Is(err, usecase.ErrVisitPaymentNotFound):
		return errPaymentNotFound
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
