package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreatePaymentIntent asks the payment processor for a card payment intent
// over the booking's price and hands the client secret back to the caller.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := h.StripeSvc.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		h.serverError(c, "create payment intent", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
