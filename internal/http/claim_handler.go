package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mercuryins/pas-service/internal/service"
)

type fileClaimRequest struct {
	PolicyID    string `json:"policyId" binding:"required"`
	CustomerID  string `json:"customerId" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *Handler) fileClaim(c *gin.Context) {
	var req fileClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	policyID, err := uuid.Parse(strings.TrimSpace(req.PolicyID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid policyId"})
		return
	}
	customerID, err := uuid.Parse(strings.TrimSpace(req.CustomerID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customerId"})
		return
	}

	claim, err := h.claims.File(c.Request.Context(), service.FileClaimInput{
		PolicyID:    policyID,
		CustomerID:  customerID,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClaimResponse(claim))
}

func (h *Handler) getClaim(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	claim, err := h.claims.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClaimResponse(claim))
}

func (h *Handler) claimsByPolicy(c *gin.Context) {
	policyID, ok := parseIDParam(c, "policyId")
	if !ok {
		return
	}
	claims, err := h.claims.GetByPolicy(c.Request.Context(), policyID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClaimResponses(claims))
}

type uploadDocumentRequest struct {
	Path string `json:"path" binding:"required"`
}

func (h *Handler) uploadClaimDocument(c *gin.Context) {
	claimID, ok := parseIDParam(c, "claimId")
	if !ok {
		return
	}

	var req uploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claim, err := h.claims.UploadDocument(c.Request.Context(), claimID, req.Path)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClaimResponse(claim))
}
