package httpapi

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kirubha-07/elix-career-advisor/internal/common"
	"github.com/kirubha-07/elix-career-advisor/internal/httpapi/handlers"
	"github.com/kirubha-07/elix-career-advisor/internal/httpapi/middleware"
)

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	r.GET("/ping", h.Ping)

	r.POST("/login", h.Login)
	r.POST("/ask", h.Ask)
	r.GET("/download/:student_id", h.Download)
	r.GET("/sessions/:session_id/history", h.SessionHistory)

	authGroup := r.Group("/")
	authGroup.Use(middleware.AuthRequired(h.Cfg.JWTSecret))
	authGroup.GET("/me", h.Me)

	// async report jobs (worker process)
	if h.Jobs != nil {
		r.POST("/reports", h.CreateReportJob)
		r.GET("/reports/:job_id", h.GetReportJob)
	}

	if dir := h.Cfg.StaticDir; dir != "" {
		r.Static("/static", dir)
		r.StaticFile("/", filepath.Join(dir, "index.html"))
	}
	return r
}
