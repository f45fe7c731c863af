package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yaskovbs/My-Second-Project/internal/adapters/transport/http/middleware"
	"github.com/yaskovbs/My-Second-Project/internal/app/user/service"
	jwtdomain "github.com/yaskovbs/My-Second-Project/internal/domain/auth/jwt"
	"github.com/yaskovbs/My-Second-Project/internal/infra/config"
)

// Signin attempts allowed per source IP inside one fixed window.
const (
	signinMaxAttempts = 5
	signinWindow      = 60 * time.Second
)

// NewRouter wires middleware and the user resource routes under /api/users.
// Signup and signin are open, everything else sits behind the auth gate.
func NewRouter(cfg *config.Config, svc service.Service, tokens jwtdomain.TokenService, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, rec any) {
		log.Error("panic recovered", zap.Any("panic", rec), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.SecureHeaders())
	router.Use(middleware.NewHTTPRateLimitPerIP(cfg.GlobalRateLimit, cfg.GlobalRateBurst, 10_000, time.Hour))

	corsConfig := cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			"Authorization",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	h := &Handler{svc: svc, log: log}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})

	users := router.Group("/api/users")
	users.POST("/signup", h.Signup)
	users.POST("/signin",
		middleware.NewSigninRateLimitPerIP(signinMaxAttempts, signinWindow, 10_000),
		h.Signin,
	)

	protected := users.Group("", middleware.RequireAuth(tokens))
	protected.GET("", h.List)
	protected.GET("/:id", h.Get)
	protected.PUT("/:id", h.Update)
	protected.DELETE("/:id", h.Delete)

	return router
}
