package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercuryins/pas-service/internal/service"
)

type generateQuoteRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
	Make       string `json:"make" binding:"required"`
	Model      string `json:"model" binding:"required"`
	Year       int    `json:"year" binding:"required"`
	VIN        string `json:"vin" binding:"required"`
	DriverAge  int    `json:"driverAge" binding:"required"`
}

func (h *Handler) generateQuote(c *gin.Context) {
	var req generateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customerID, err := uuid.Parse(strings.TrimSpace(req.CustomerID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customerId"})
		return
	}

	quote, err := h.quotes.Generate(c.Request.Context(), service.GenerateQuoteInput{
		CustomerID: customerID,
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		VIN:        req.VIN,
		DriverAge:  req.DriverAge,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

type saveQuoteRequest struct {
	CustomerID      string          `json:"customerId" binding:"required"`
	VehicleID       string          `json:"vehicleId" binding:"required"`
	CoverageDetails string          `json:"coverageDetails" binding:"required"`
	PremiumAmount   decimal.Decimal `json:"premiumAmount" binding:"required"`
}

func (h *Handler) saveQuote(c *gin.Context) {
	var req saveQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customerID, err := uuid.Parse(strings.TrimSpace(req.CustomerID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customerId"})
		return
	}
	vehicleID, err := uuid.Parse(strings.TrimSpace(req.VehicleID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicleId"})
		return
	}

	quote, err := h.quotes.Save(c.Request.Context(), service.SaveQuoteInput{
		CustomerID:      customerID,
		VehicleID:       vehicleID,
		CoverageDetails: req.CoverageDetails,
		PremiumAmount:   req.PremiumAmount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

func (h *Handler) getQuote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	quote, err := h.quotes.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

func (h *Handler) quotesByCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	quotes, err := h.quotes.GetByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuoteResponses(quotes))
}

func (h *Handler) convertQuote(c *gin.Context) {
	quoteID, ok := parseIDParam(c, "quoteId")
	if !ok {
		return
	}
	agentID, err := uuid.Parse(strings.TrimSpace(c.Query("agentId")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agentId"})
		return
	}

	policyID, err := h.quotes.ConvertToPolicy(c.Request.Context(), quoteID, agentID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"policyId": policyID})
}
