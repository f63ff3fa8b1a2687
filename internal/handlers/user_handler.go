package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/models"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/store"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/utils"
)

// UpsertUser creates or updates the account for the email in the path and
// issues a fresh access token bound to it. This is how identity enters the
// system; there is no separate login.
func (h *Handler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var req struct {
		Name string `json:"name"`
	}
	// Body is optional; the email in the path is the key.
	_ = c.ShouldBindJSON(&req)

	user := &models.User{Email: email, Name: req.Name}
	if err := h.Users.Upsert(c.Request.Context(), user); err != nil {
		h.serverError(c, "upsert user", err)
		return
	}

	token, err := utils.GenerateJWT(email, h.JWTExpiry)
	if err != nil {
		h.serverError(c, "issue token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{"acknowledged": true},
		"token":  token,
	})
}

// GetUsers lists all user accounts.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// PromoteAdmin grants the admin role to the user in the path. Reached only
// through the authenticate + admin middleware chain.
func (h *Handler) PromoteAdmin(c *gin.Context) {
	email := c.Param("email")
	matched, err := h.Users.PromoteAdmin(c.Request.Context(), email)
	if err != nil {
		h.serverError(c, "promote admin", err)
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "matchedCount": matched})
}

// CheckAdmin reports whether the user in the path holds the admin role.
// An unknown user is simply not an admin.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	user, err := h.Users.FindByEmail(c.Request.Context(), email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.serverError(c, "check admin", err)
		return
	}
	admin := err == nil && user.IsAdmin()
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
