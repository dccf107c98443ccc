package storage

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/m3rciful/furnibot/core/logger"
	"github.com/m3rciful/furnibot/internal/catalog"
	"log/slog"
)

// ProductLister supplies the products served over HTTP.
type ProductLister interface {
	List(ctx context.Context) ([]catalog.Product, error)
}

// Pinger reports backend health for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the catalog HTTP service.
type Server struct {
	engine *gin.Engine
	listen string
}

// NewServer builds the gin router with the product endpoint and probes.
func NewServer(cfg ServerConfig, products ProductLister, health Pinger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	engine.Use(cors.Default())

	engine.GET("/Product/GetProducts", func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			logger.HTTP.LogAttrs(c.Request.Context(), slog.LevelError, "products.list_failed",
				slog.String("err", err.Error()),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
			return
		}
		if list == nil {
			list = []catalog.Product{}
		}
		c.JSON(http.StatusOK, list)
	})

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.GET("/readyz", func(c *gin.Context) {
		if health != nil {
			if err := health.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	return &Server{engine: engine, listen: cfg.Listen}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.listen,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.HTTP.Info("listening",
			slog.String("event", "listen"),
			slog.String("addr", s.listen),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.HTTP.LogAttrs(c.Request.Context(), slog.LevelInfo, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", logger.RoundMS(time.Since(start))),
		)
	}
}
