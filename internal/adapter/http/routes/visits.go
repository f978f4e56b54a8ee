package routes

import (
	"net/http"

	"workshop_visits/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathVisits   = "/visits"
	PathPayments = "/payments"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addVisitRoutes(rg *gin.RouterGroup, h *handlers.VisitHandler) {
	visits := rg.Group(PathVisits)
	{
		visits.POST("/convert", h.ConvertToVisit)
		visits.POST("/check-in", h.CheckIn)
		visits.GET("/:id", h.GetVisit)

		visits.POST("/:id/services", h.AddService)
		visits.PUT("/:id/services", h.SaveServicesChanges)
		visits.PATCH("/:id/services/:item_id/approve", h.ApproveService)
		visits.PATCH("/:id/services/:item_id/reject", h.RejectService)

		visits.PATCH("/:id/ready-for-pickup", h.MarkAsReadyForPickup)
		visits.PATCH("/:id/complete", h.Complete)
		visits.PATCH("/:id/reject", h.Reject)
		visits.PATCH("/:id/archive", h.Archive)
		visits.PATCH("/:id/return-to-progress", h.ReturnToInProgress)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.VisitPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:visit_id", h.CreatePaymentByVisitID)
		payments.GET("/:visit_id", h.GetPaymentByVisitID)
		payments.GET("/:visit_id/:payment_id", h.GetPaymentByID)
	}
}
