package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timers/internal/handler"
	"timers/internal/logging"
	"timers/internal/middleware"
	"timers/internal/service"
)

func New(
	authService *service.AuthService,
	authHandler *handler.AuthHandler,
	timerHandler *handler.TimerHandler,
	logger logging.Logger,
	corsOrigins []string,
) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.RequestLogger(logger), gin.Recovery(), middleware.CORS(corsOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	session := middleware.Session(authService, logger)

	engine.POST("/signup", authHandler.Signup)
	engine.POST("/login", authHandler.Login)
	engine.GET("/logout", session, authHandler.Logout)

	api := engine.Group("/api")
	api.Use(session)
	api.GET("/timers", timerHandler.List)
	api.POST("/timers", timerHandler.Start)
	api.POST("/timers/:id/stop", timerHandler.Stop)

	return engine
}
