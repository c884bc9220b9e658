package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mercuryins/pas-service/internal/http/middleware"
	"github.com/mercuryins/pas-service/internal/model"
)

func NewRouter(h *Handler, authMiddleware gin.HandlerFunc, environment string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	agentOrAdmin := middleware.RequireRoles(model.RoleAgent, model.RoleAdmin)
	adminOnly := middleware.RequireRoles(model.RoleAdmin)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
	authGroup.POST("/reset-password", h.resetPassword)

	users := api.Group("/users")
	users.Use(authMiddleware)
	users.GET("/me", h.me)
	users.PUT("/update-profile", h.updateProfile)
	users.GET("/all", adminOnly, h.allUsers)
	users.DELETE("/:id", adminOnly, h.deleteUser)

	quotes := api.Group("/quotes")
	quotes.Use(authMiddleware)
	quotes.POST("/generate", h.generateQuote)
	quotes.POST("/save", h.saveQuote)
	quotes.GET("/:id", h.getQuote)
	quotes.GET("/customer/:customerId", h.quotesByCustomer)
	quotes.POST("/convert-to-policy/:quoteId", agentOrAdmin, h.convertQuote)

	policies := api.Group("/policies")
	policies.Use(authMiddleware)
	policies.POST("/create", agentOrAdmin, h.createPolicy)
	policies.GET("/:id", h.getPolicy)
	policies.GET("/:id/document", h.policyDocument)
	policies.GET("/customer/:customerId", h.policiesByCustomer)
	policies.GET("/agent/:agentId", agentOrAdmin, h.policiesByAgent)
	policies.GET("/agent/:agentId/export", agentOrAdmin, h.exportPoliciesByAgent)
	policies.PUT("/:id", agentOrAdmin, h.updatePolicy)
	policies.DELETE("/:id", agentOrAdmin, h.deletePolicy)

	claims := api.Group("/claims")
	claims.Use(authMiddleware)
	claims.POST("/file", h.fileClaim)
	claims.GET("/:id", h.getClaim)
	claims.GET("/policy/:policyId", h.claimsByPolicy)
	claims.POST("/upload-document/:claimId", agentOrAdmin, h.uploadClaimDocument)

	return router
}
