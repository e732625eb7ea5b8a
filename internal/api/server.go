package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/api/handler"
	"github.com/Bigyayos/TiendaControl/internal/api/handler/router"
	"github.com/Bigyayos/TiendaControl/internal/config"
	"github.com/Bigyayos/TiendaControl/internal/scheduler"
	"github.com/Bigyayos/TiendaControl/internal/usecases/authenticating"
	"github.com/Bigyayos/TiendaControl/internal/usecases/objectives"
	"github.com/Bigyayos/TiendaControl/internal/usecases/reporting"
	"github.com/Bigyayos/TiendaControl/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	backend *storage.Backend,
	reporter reporting.Reporter,
	evaluator objectives.Evaluator,
	authenticator authenticating.Authenticator,
	dailyDigestService *scheduler.DailyDigestService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		DailyDigestService: dailyDigestService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Stores(backend.Stores)...),
		router.WithRoutes(handler.Employees(backend.Employees)...),
		router.WithRoutes(handler.Sales(backend.Sales)...),
		router.WithRoutes(handler.Objectives(backend.Objectives, evaluator)...),
		router.WithRoutes(handler.Dashboard(reporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error durante la ejecución del servidor")
		}
	}()

	// Esperar una señal de término o la cancelación del contexto
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Señal de interrupción recibida")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicación cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando apagado controlado del servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error durante el apagado del servidor")
		return err
	}

	logrus.Info("Servidor apagado con éxito")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP apagado con éxito")
	return nil
}
