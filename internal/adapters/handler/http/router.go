package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/zenhabit/zenhabit-engine/internal/adapters/handler/http/middleware"
	"github.com/zenhabit/zenhabit-engine/internal/core/services"
)

type RouterDependencies struct {
	JournalHandler *JournalHandler
	StatsHandler   *StatsHandler
	InsightHandler *InsightHandler
	SessionHandler *SessionHandler
	Journal        *services.JournalService
	Redis          *redis.Client
	StorageDriver  string
	StartTime      time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil {
		deps.JournalHandler.log.Debug().Msg("rate limiter enabled")
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, 100, 1*time.Minute, deps.JournalHandler.log))
	}

	router.GET("/health", func(c *gin.Context) {
		redisStatus := "disabled"
		statusCode := 200

		if deps.Redis != nil {
			redisStatus = "connected"
			if deps.Redis.Ping(c.Request.Context()).Err() != nil {
				redisStatus = "unreachable"
				statusCode = 503
			}
		}

		c.JSON(statusCode, gin.H{
			"status":  "ok",
			"storage": deps.StorageDriver,
			"entries": deps.Journal.Count(),
			"redis":   redisStatus,
			"uptime":  time.Since(deps.StartTime).String(),
		})
	})

	apiV1 := router.Group("/api/v1")

	deps.SessionHandler.RegisterRoutes(apiV1)
	deps.JournalHandler.RegisterRoutes(apiV1)
	deps.StatsHandler.RegisterRoutes(apiV1)
	deps.InsightHandler.RegisterRoutes(apiV1)

	return router
}
