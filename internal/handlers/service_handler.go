package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/services"
)

// GetServices lists the treatment catalog projected to names only.
func (h *Handler) GetServices(c *gin.Context) {
	list, err := h.Services.ListNames(c.Request.Context())
	if err != nil {
		h.serverError(c, "list services", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetAvailable returns the catalog with each service's open slots for the
// queried date. Read-only and advisory; the actual reservation race is
// settled at booking creation.
func (h *Handler) GetAvailable(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	ctx := c.Request.Context()
	catalog, err := h.Services.List(ctx)
	if err != nil {
		h.serverError(c, "list services", err)
		return
	}
	bookings, err := h.Bookings.FindByDate(ctx, date)
	if err != nil {
		h.serverError(c, "list bookings for date", err)
		return
	}

	c.JSON(http.StatusOK, services.ComputeAvailability(catalog, bookings))
}
