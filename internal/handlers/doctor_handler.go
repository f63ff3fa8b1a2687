package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/models"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/store"
)

type CreateDoctorRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Img       string `json:"img"`
}

// CreateDoctor adds a doctor to the roster. Admin only.
func (h *Handler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor := &models.Doctor{
		Email:     req.Email,
		Name:      req.Name,
		Specialty: req.Specialty,
		Img:       req.Img,
	}
	err := h.Doctors.Insert(c.Request.Context(), doctor)
	if errors.Is(err, store.ErrDuplicate) {
		c.JSON(http.StatusConflict, gin.H{"error": "a doctor with this email already exists"})
		return
	}
	if err != nil {
		h.serverError(c, "create doctor", err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// GetDoctors lists the roster. Admin only.
func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "list doctors", err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// DeleteDoctor removes one doctor by email. Admin only.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	email := c.Param("email")
	deleted, err := h.Doctors.DeleteByEmail(c.Request.Context(), email)
	if err != nil {
		h.serverError(c, "delete doctor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
