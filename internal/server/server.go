// Package server exposes the pantry store HTTP API.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/freshtrackhq/freshtrack/internal/service"
)

// Server wires the HTTP API over the service layer.
type Server struct {
	srv *http.Server
	log *slog.Logger
}

type Services struct {
	Items   service.ItemService
	Stats   service.StatsService
	Auth    service.AuthService
	Recipes service.RecipeService
}

func New(addr string, svcs Services, exposeMetrics bool, log *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		srv: &http.Server{Addr: addr, Handler: engine, ReadHeaderTimeout: 5 * time.Second},
		log: log,
	}

	h := &handlers{svcs: svcs, log: log}

	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if exposeMetrics {
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	engine.GET("/pantry/items", h.listItems)
	engine.POST("/pantry/items", h.createItem)
	engine.PUT("/pantry/items/:id", h.updateItem)
	engine.DELETE("/pantry/items/:id", h.deleteItem)

	engine.POST("/auth/signup", h.signup)
	engine.POST("/auth/login", h.login)

	engine.GET("/stats/waste", h.wasteStats)
	engine.GET("/stats/waste/enhanced", h.enhancedWasteStats)

	engine.POST("/ai/recipes", h.recipes)

	return s
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler returns the underlying HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
