package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/middleware"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/models"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/services"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/store"
)

type CreateBookingRequest struct {
	Patient     string `json:"patient" binding:"required,email"`
	PatientName string `json:"patientName" binding:"required"`
	Treatment   string `json:"treatment" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Slot        string `json:"slot" binding:"required"`
}

// CreateBooking registers an appointment. A repeat request for the same
// (treatment, date, patient) is answered with the existing record and
// success=false, which keeps client retry logic a plain re-POST.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking := &models.Booking{
		Patient:     req.Patient,
		PatientName: req.PatientName,
		Treatment:   req.Treatment,
		Date:        req.Date,
		Slot:        req.Slot,
	}
	result, err := h.BookingSvc.Create(c.Request.Context(), booking)
	if err != nil {
		h.serverError(c, "create booking", err)
		return
	}

	if !result.Created {
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": result.Booking})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result.Booking})
}

// GetBookings lists the caller's own bookings. The patient query must match
// the verified email claim.
func (h *Handler) GetBookings(c *gin.Context) {
	patient := c.Query("patient")
	if patient != c.GetString(middleware.EmailKey) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.BookingSvc.ListByPatient(c.Request.Context(), patient)
	if err != nil {
		h.serverError(c, "list bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns one booking by id.
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := h.BookingSvc.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if err != nil {
		h.serverError(c, "get booking", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type PayBookingRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
	Amount        int64  `json:"amount"`
	Patient       string `json:"patient"`
}

// PayBooking finalizes a payment: the payment record is appended and the
// booking flipped to paid. A missing booking is a 404, not a silent success.
func (h *Handler) PayBooking(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req PayBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment := &models.Payment{
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Patient:       req.Patient,
	}
	booking, err := h.PaymentSvc.Finalize(c.Request.Context(), id, payment)
	if errors.Is(err, services.ErrBookingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if err != nil {
		h.serverError(c, "finalize payment", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
