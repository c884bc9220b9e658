package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mercuryins/pas-service/internal/model"
	"github.com/mercuryins/pas-service/internal/service"
)

type registerRequest struct {
	FirstName     string  `json:"firstName" binding:"required"`
	LastName      string  `json:"lastName" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=6"`
	Role          string  `json:"role" binding:"required,oneof=CUSTOMER AGENT ADMIN"`
	DOB           string  `json:"dob"`
	LicenseNumber *string `json:"licenseNumber"`
}

type authResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dob *time.Time
	if req.DOB != "" {
		parsed, err := parseDate(req.DOB)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dob"})
			return
		}
		dob = &parsed
	}

	result, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Password:      req.Password,
		Role:          model.Role(req.Role),
		DOB:           dob,
		LicenseNumber: req.LicenseNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{AccessToken: result.AccessToken, TokenType: result.TokenType})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{AccessToken: result.AccessToken, TokenType: result.TokenType})
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

func (h *Handler) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
