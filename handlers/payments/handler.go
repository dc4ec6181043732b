package payments

import (
	"net/http"

	"creatoramp-backend/models"
	"creatoramp-backend/repository"
	"creatoramp-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	payments *repository.PaymentRepository
}

func New(payments *repository.PaymentRepository) *Handler {
	return &Handler{payments: payments}
}

// @Summary List payments
// @Description Retrieve payment records, optionally filtered by user or status
// @Tags payments
// @Produce json
// @Param userId query string false "Filter by paid user"
// @Param status query string false "Filter by status"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "success, payments"
// @Failure 500 {object} map[string]interface{} "success: false, error: Error message"
// @Router /payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	rows, err := h.payments.ListPayments(repository.PaymentFilter{
		UserID: c.Query("userId"),
		Status: models.PaymentStatus(c.Query("status")),
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving payments: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"payments": rows,
	})
}
