package http

import (
	"net/http"
	"time"

	_ "github.com/MMN3003/lightcone/docs" // Swagger docs
	"github.com/MMN3003/lightcone/src/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const requestIDHeader = "X-Request-ID"

// NewRouter builds the engine with core middleware, the healthcheck, the
// Swagger UI and the wallet routes.
func NewRouter(h *Handler, logg *logger.Logger) *gin.Engine {
	r := gin.New()

	// Core middleware
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(accessLog(logg))

	// --- Healthcheck ---
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Swagger ---
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- API routes ---
	h.RegisterRoutes(r)
	return r
}

// requestID keeps a caller-supplied X-Request-ID or mints one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logg.WithField("request_id", c.GetString("request_id")).Infof("%s %s status:%d duration:%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
