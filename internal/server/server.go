// Package server wires the HTTP surface: routes, middleware and the
// error-to-status translation.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/fxdesk/portal/docs"
	"github.com/fxdesk/portal/internal/quote"
	"github.com/fxdesk/portal/internal/trade"
)

// Server is the HTTP front of the portal.
type Server struct {
	engine *gin.Engine
	logger *zap.Logger
}

// New builds the gin engine with all routes registered. ping checks store
// liveness for /healthz and may be nil.
func New(logger *zap.Logger, quotes quote.Service, trades trade.Service, ping func() error) *Server {
	registerValidations()

	engine := gin.New()
	engine.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	engine.Use(ginzap.RecoveryWithZap(logger, true))
	engine.Use(cors.Default())

	handler := NewHandler(logger, quotes, trades, ping)

	api := engine.Group("/api")
	{
		api.POST("/quotes", handler.CreateQuote)
		api.POST("/trades", handler.BookTrade)
		api.GET("/trades", handler.TradeHistory)
	}

	engine.GET("/healthz", handler.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{engine: engine, logger: logger}
}

// Engine exposes the router for the http.Server in main and for tests.
func (s *Server) Engine() *gin.Engine { return s.engine }
