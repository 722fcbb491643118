package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/muratfirtina/teklif-sistemi-sub002/server/response"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	s.defineRoutes(r)

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 10,
	})
	limitLogin := limitRateForLogin(store)

	apirouter := router.Group("/api/v1")
	apirouter.POST("/auth/signup", s.handleSignup())
	apirouter.POST("/auth/login", limitLogin, s.handleLogin())

	authorized := apirouter.Group("/")
	authorized.Use(s.Authorize())

	authorized.GET("/me", s.RequirePageAccess(PageProfile), s.handleShowProfile())
	authorized.GET("/users", s.RequirePageAccess(PageUsers), s.handleGetAllUsers())

	notifications := authorized.Group("/notifications", s.RequirePageAccess(PageNotifications))
	{
		notifications.GET("/unread", s.handleListUnreadNotifications())
		notifications.GET("/unread/count", s.handleUnreadNotificationCount())
		notifications.PUT("/:id/read", s.handleMarkNotificationRead())
		notifications.PUT("/read-all", s.handleMarkAllNotificationsRead())
	}

	customers := authorized.Group("/customers", s.RequirePageAccess(PageCustomers))
	{
		customers.POST("", s.handleCreateCustomer())
		customers.GET("", s.handleGetAllCustomers())
		customers.GET("/:id", s.handleGetCustomer())
		customers.PUT("/:id", s.handleUpdateCustomer())
		customers.DELETE("/:id", s.handleDeleteCustomer())
	}

	products := authorized.Group("/products", s.RequirePageAccess(PageProducts))
	{
		products.POST("", s.handleCreateProduct())
		products.GET("", s.handleGetAllProducts())
		products.GET("/:id", s.handleGetProduct())
		products.PUT("/:id", s.handleUpdateProduct())
		products.DELETE("/:id", s.handleDeleteProduct())
		products.POST("/:id/stock", s.handleAdjustStock())
		products.GET("/:id/stock/movements", s.handleGetStockMovements())
	}

	quotations := authorized.Group("/quotations", s.RequirePageAccess(PageQuotations))
	{
		quotations.POST("", s.handleCreateQuotation())
		quotations.GET("", s.handleGetAllQuotations())
		quotations.GET("/:id", s.handleGetQuotation())
		quotations.POST("/:id/send", s.handleSendQuotation())
		quotations.POST("/:id/approve", s.handleApproveQuotation())
		quotations.POST("/:id/reject", s.handleRejectQuotation())
	}

	productionOrders := authorized.Group("/production-orders", s.RequirePageAccess(PageProductionOrders))
	{
		productionOrders.GET("", s.handleGetAllProductionOrders())
		productionOrders.GET("/:id", s.handleGetProductionOrder())
		productionOrders.PUT("/:id/status", s.handleUpdateProductionOrderStatus())
	}

	invoices := authorized.Group("/invoices", s.RequirePageAccess(PageInvoices))
	{
		invoices.POST("/from-quotation/:quotationID", s.handleCreateInvoiceFromQuotation())
		invoices.GET("", s.handleGetAllInvoices())
		invoices.GET("/:id", s.handleGetInvoice())
		invoices.PUT("/:id/status", s.handleUpdateInvoiceStatus())
	}

	settings := authorized.Group("/settings", s.RequirePageAccess(PageSettings))
	{
		settings.GET("", s.handleGetCompanySetting())
		settings.PUT("", s.handleUpdateCompanySetting())
	}
}

func limitRateForLogin(store ratelimit.Store) gin.HandlerFunc {
	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
			response.JSON(c, "too many login attempts", http.StatusTooManyRequests, nil, nil)
			c.Abort()
		},
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	})
}
