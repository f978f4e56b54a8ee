package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	request "workshop_visits/internal/adapter/http/dto/request"
	response "workshop_visits/internal/adapter/http/dto/response"
	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase"
	"workshop_visits/internal/usecase/command"
	"workshop_visits/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	HeaderStudioID = "X-Studio-ID"
	HeaderUserID   = "X-User-ID"

	systemActor = "system"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errMissingStudio  = pkg.NewDomainErrorSimple("MISSING_STUDIO", "X-Studio-ID header is required", http.StatusBadRequest)
)

// VisitHandler handles HTTP requests for workshop visits.
type VisitHandler struct {
	usecase usecase.IVisitUseCase
}

func NewVisitHandler(uc usecase.IVisitUseCase) *VisitHandler {
	return &VisitHandler{usecase: uc}
}

// ConvertToVisit godoc
// @Summary      Open a visit from an appointment
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        X-Studio-ID  header  string                          true  "Studio"
// @Param        X-User-ID    header  string                          false "Actor"
// @Param        body         body    request.ConvertToVisitRequest   true  "Appointment"
// @Success      201  {object}  response.VisitResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /visits/convert [post]
func (h *VisitHandler) ConvertToVisit(c *gin.Context) {
	studioID, actorID, ok := callerOf(c)
	if !ok {
		return
	}
	var payload request.ConvertToVisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	visit, err := h.usecase.ConvertToVisit(c.Request.Context(), payload.ToCommand(studioID, actorID))
	if err != nil {
		log.WithFields(log.Fields{"studio_id": studioID, "appointment_id": payload.AppointmentID}).WithError(err).Warn("[visit][handler] convert failed")
		respondError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromVisit(visit))
}

// CheckIn godoc
// @Summary      Check a reserved vehicle in and open its visit
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        X-Studio-ID  header  string                  true  "Studio"
// @Param        X-User-ID    header  string                  false "Actor"
// @Param        body         body    request.CheckInRequest  true  "Check-in"
// @Success      201  {object}  response.VisitResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /visits/check-in [post]
func (h *VisitHandler) CheckIn(c *gin.Context) {
	studioID, actorID, ok := callerOf(c)
	if !ok {
		return
	}
	var payload request.CheckInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}
	cmd, err := payload.ToCommand(studioID, actorID)
	if err != nil {
		respondError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	visit, err := h.usecase.CreateVisitFromReservation(c.Request.Context(), cmd)
	if err != nil {
		log.WithFields(log.Fields{"studio_id": studioID, "reservation_id": cmd.ReservationID}).WithError(err).Warn("[visit][handler] check-in failed")
		respondError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromVisit(visit))
}

// GetVisit godoc
// @Summary      Get a visit with its services and totals
// @Tags         visits
// @Produce      json
// @Param        X-Studio-ID  header  string  true  "Studio"
// @Param        id           path    string  true  "Visit ID"
// @Success      200  {object}  response.VisitResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /visits/{id} [get]
func (h *VisitHandler) GetVisit(c *gin.Context) {
	studioID, _, ok := callerOf(c)
	if !ok {
		return
	}
	visit, err := h.usecase.GetByID(c.Request.Context(), studioID, c.Param("id"))
	if err != nil {
		respondError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVisit(visit))
}

// AddService godoc
// @Summary      Add a catalog service to a visit
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        X-Studio-ID  header  string                      true  "Studio"
// @Param        X-User-ID    header  string                      false "Actor"
// @Param        id           path    string                      true  "Visit ID"
// @Param        body         body    request.ServiceLineRequest  true  "Service"
// @Success      200  {object}  response.VisitResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /visits/{id}/services [post]
func (h *VisitHandler) AddService(c *gin.Context) {
	studioID, actorID, ok := callerOf(c)
	if !ok {
		return
	}
	var payload request.ServiceLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}
	cmd, err := payload.ToCommand(studioID, c.Param("id"), actorID)
	if err != nil {
		respondError(c, mapVisitError(err))
		return
	}

	visit, err := h.usecase.AddService(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVisit(visit))
}

// SaveServicesChanges godoc
// @Summary      Apply a batch of service line edits
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        X-Studio-ID  header  string                              true  "Studio"
// @Param        X-User-ID    header  string                              false "Actor"
// @Param        id           path    string                              true  "Visit ID"
// @Param        body         body    request.SaveServicesChangesRequest  true  "Changes"
// @Success      200  {object}  response.VisitResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /visits/{id}/services [put]
func (h *VisitHandler) SaveServicesChanges(c *gin.Context) {
	studioID, actorID, ok := callerOf(c)
	if !ok {
		return
	}
	var payload request.SaveServicesChangesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}
	cmd, err := payload.ToCommand(studioID, c.Param("id"), actorID)
	if err != nil {
		respondError(c, mapVisitError(err))
		return
	}

	visit, err := h.usecase.SaveServicesChanges(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVisit(visit))
}

// ApproveService godoc
// @Summary      Record the customer's approval of a service line
// @Tags         visits
// @Produce      json
// @Param        X-Studio-ID  header  string  true  "Studio"
// @Param        id           path    string  true  "Visit ID"
// @Param        item_id      path    string  true  "Service item ID"
// @Success      200  {object}  response.VisitResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /visits/{id}/services/{item_id}/approve [patch]
func (h *VisitHandler) ApproveService(c *gin.Context) {
	h.decide(c, h.usecase.ApproveService)
}

// RejectService godoc
// @Summary      Record the customer's rejection of a service line
// @Tags         visits
// @Produce      json
// @Param        X-Studio-ID  header  string  true  "Studio"
// @Param        id           path    string  true  "Visit ID"
// @Param        item_id      path    string  true  "Service item ID"
// @Success      200  {object}  response.VisitResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /visits/{id}/services/{item_id}/reject [patch]
func (h *VisitHandler) RejectService(c *gin.Context) {
	h.decide(c, h.usecase.RejectService)
}

// MarkAsReadyForPickup godoc
// @Summary      Move a visit to READY_FOR_PICKUP
// @Tags         visits
// @Produce      json
// @Param        X-Studio-ID  header  string  true  "Studio"
// @Param        id           path    string  true  "Visit ID"
// @Success      200  {object}  response.VisitResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /visits/{id}/ready-for-pickup [patch]
func (h *VisitHandler) MarkAsReadyForPickup(c *gin.Context) {
	h.act(c, h.usecase.MarkAsReadyForPickup)
}

// Complete godoc
// @Summary      Hand the vehicle back and complete the visit
// @Tags         visits
// @Produce      json
// @Param        X-Studio-ID  header  string  true  "Studio"
// @Param        id           path    string  true  "Visit ID"
// @Success      200  {object}  response.VisitResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /visits/{id}/complete [patch]
func (h *VisitHandler) Complete(c *gin.Context) {
	h.act(c, h.usecase.Complete)
}

// Reject godoc
// @Summary      Reject a visit
// @Tags         visits
// @Produce      json
// @Param        X-Studio-ID  header  string  true  "Studio"
// @Param        id           path    string  true  "Visit ID"
// @Success      200  {object}  response.VisitResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /visits/{id}/reject [patch]
func (h *VisitHandler) Reject(c *gin.Context) {
	h.act(c, h.usecase.Reject)
}

// Archive godoc
// @Summary      Archive a completed or rejected visit
// @Tags         visits
// @Produce      json
// @Param        X-Studio-ID  header  string  true  "Studio"
// @Param        id           path    string  true  "Visit ID"
// @Success      200  {object}  response.VisitResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /visits/{id}/archive [patch]
func (h *VisitHandler) Archive(c *gin.Context) {
	h.act(c, h.usecase.Archive)
}

// ReturnToInProgress godoc
// @Summary      Send a visit back to the workshop floor
// @Tags         visits
// @Produce      json
// @Param        X-Studio-ID  header  string  true  "Studio"
// @Param        id           path    string  true  "Visit ID"
// @Success      200  {object}  response.VisitResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /visits/{id}/return-to-progress [patch]
func (h *VisitHandler) ReturnToInProgress(c *gin.Context) {
	h.act(c, h.usecase.ReturnToInProgress)
}

func (h *VisitHandler) act(
	c *gin.Context,
	op func(ctx context.Context, cmd command.VisitAction) (entities.Visit, error),
) {
	studioID, actorID, ok := callerOf(c)
	if !ok {
		return
	}
	visit, err := op(c.Request.Context(), command.VisitAction{StudioID: studioID, VisitID: c.Param("id"), ActorID: actorID})
	if err != nil {
		respondError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVisit(visit))
}

func (h *VisitHandler) decide(
	c *gin.Context,
	op func(ctx context.Context, cmd command.ServiceDecision) (entities.Visit, error),
) {
	studioID, actorID, ok := callerOf(c)
	if !ok {
		return
	}
	visit, err := op(c.Request.Context(), command.ServiceDecision{
		StudioID: studioID,
		VisitID:  c.Param("id"),
		ItemID:   c.Param("item_id"),
		ActorID:  actorID,
	})
	if err != nil {
		respondError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVisit(visit))
}

// callerOf reads the studio and actor headers. It answers 400 itself when
// the studio is missing.
func callerOf(c *gin.Context) (studioID, actorID string, ok bool) {
	studioID = strings.TrimSpace(c.GetHeader(HeaderStudioID))
	if studioID == "" {
		respondError(c, errMissingStudio)
		return "", "", false
	}
	actorID = strings.TrimSpace(c.GetHeader(HeaderUserID))
	if actorID == "" {
		actorID = systemActor
	}
	return studioID, actorID, true
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapVisitError(err error) *pkg.AppError {
	var notFound *entities.NotFoundError
	switch {
	case errors.Is(err, usecase.ErrInvalidStudioID), errors.Is(err, usecase.ErrInvalidVisitID),
		errors.Is(err, usecase.ErrInvalidAppointmentID), errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrMissingCustomer), errors.Is(err, request.ErrUnknownCustomerMode):
		return errInvalidRequest.WithDetails(err.Error())
	case errors.As(err, &notFound):
		code := strings.ToUpper(strings.ReplaceAll(notFound.Entity, " ", "_")) + "_NOT_FOUND"
		return pkg.NewDomainErrorSimple(code, "Resource not found", http.StatusNotFound).WithDetails(err.Error())
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrServicesPendingApproval):
		return pkg.NewDomainErrorSimple("SERVICES_PENDING_APPROVAL", "Services are pending customer approval", http.StatusConflict).WithDetails(err.Error())
	case errors.Is(err, entities.ErrIllegalStateTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_STATUS_TRANSITION", "Visit status cannot change this way", http.StatusConflict).WithDetails(err.Error())
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusUnprocessableEntity).WithDetails(err.Error())
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
