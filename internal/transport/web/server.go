package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"book_catalog_web/config"
	"book_catalog_web/internal/transport/web/middleware"

	"github.com/gin-gonic/gin"
)

type Server struct {
	cfg        *config.Config
	router     *gin.Engine
	httpServer *http.Server
	ctrl       *Controller
}

// New wires the routes. requestLogRepo may be nil, in which case requests are
// only written to the log.
func New(cfg *config.Config, ctrl *Controller, requestLogRepo middleware.RequestLogRepo) *Server {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(parseTemplates())

	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())
	if requestLogRepo != nil {
		router.Use(middleware.RequestLog(requestLogRepo))
	}

	s := &Server{
		cfg:    cfg,
		router: router,
		ctrl:   ctrl,
		httpServer: &http.Server{
			Addr:         cfg.HTTP.Addr,
			Handler:      router,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		},
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.ctrl.Healthz)

	pages := s.router.Group("/", middleware.Visitor())
	pages.GET("/", s.ctrl.Home)
	pages.GET("/grid", s.ctrl.ChangePage)
	pages.GET("/grid/books", s.ctrl.GridBooks)
	pages.GET("/review/:identifier", s.ctrl.Review)
	pages.GET("/user_action", s.ctrl.UserAction)

	s.router.NoRoute(s.ctrl.NotFound)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped with error", slog.String("err", err.Error()))
			panic(err)
		}
	}()
	slog.Info("http server started!", slog.String("addr", s.cfg.HTTP.Addr))
}

func (s *Server) Stop(ctx context.Context) {
	slog.Info("start stopping http server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		slog.Error("http server shutdown error", slog.String("err", err.Error()))
	}
	slog.Info("http server stopped")
}
