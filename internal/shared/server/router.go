package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billscan-backend/internal/bills"
	"billscan-backend/internal/shared/config"
	"billscan-backend/internal/shared/metrics"
	"billscan-backend/internal/shared/server/middleware"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, billsHandler *bills.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running!")
	})
	r.GET("/metrics", metrics.Handler())
	billsHandler.RegisterRoutes(r)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
