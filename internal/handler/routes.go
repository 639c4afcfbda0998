package handler

import "github.com/gin-gonic/gin"

// Handlers groups the API handlers mounted under /api/v1
type Handlers struct {
	Property   *PropertyHandler
	Inquiry    *InquiryHandler
	Calculator *CalculatorHandler
	Document   *DocumentHandler
}

// RegisterRoutes mounts the API on api. When limiter is non-nil it guards
// inquiry submission.
func RegisterRoutes(api *gin.RouterGroup, h Handlers, limiter *RateLimiter) {
	properties := api.Group("/properties")
	{
		properties.GET("", h.Property.List)
		properties.POST("", h.Property.Create)
		properties.GET("/:slug", h.Property.Get)
		properties.GET("/:slug/similar", h.Property.Similar)
	}
	api.GET("/neighborhoods", h.Property.Neighborhoods)

	submit := []gin.HandlerFunc{h.Inquiry.Submit}
	if limiter != nil {
		submit = append([]gin.HandlerFunc{limiter.Middleware()}, submit...)
	}
	api.POST("/inquiries", submit...)
	api.GET("/inquiries", h.Inquiry.List)

	calc := api.Group("/calculator")
	{
		calc.GET("/purchase", h.Calculator.Purchase)
		calc.POST("/purchase", h.Calculator.Purchase)
		calc.GET("/rental", h.Calculator.Rental)
		calc.POST("/rental", h.Calculator.Rental)
		calc.GET("/mortgage", h.Calculator.Mortgage)
		calc.POST("/mortgage", h.Calculator.Mortgage)
		calc.GET("/policy", h.Calculator.Policy)
	}

	api.GET("/documents", h.Document.Types)
	api.POST("/documents/:type", h.Document.Generate)
}
