package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/pony-escape/api/i"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Router manages the HTTP server of the maze service emulator and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	gatherer    prometheus.Gatherer
	mode        string
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Gatherer    prometheus.Gatherer // Metrics source served at /metrics, nil disables the route
	Mode        string              // Gin mode, defaults to release
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	mode := config.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		gatherer:    config.Gatherer,
		mode:        mode,
	}
}

// Handler builds the gin engine with every controller registered under the base URL.
func (r *Router) Handler() http.Handler {
	gin.SetMode(r.mode)
	router := gin.New()
	router.Use(gin.Recovery())
	if r.mode != gin.TestMode {
		router.Use(gin.Logger())
	}

	if r.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group(r.baseURL)
	{
		for _, c := range r.controllers {
			c.Register(api)
		}
	}

	return router
}

// Run starts the HTTP server and blocks until it fails or ctx is done.
// Cancelling ctx shuts the server down gracefully.
func (r *Router) Run(ctx context.Context) error {
	gin.ForceConsoleColor()
	srv := &http.Server{Addr: r.addr, Handler: r.Handler()}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}
