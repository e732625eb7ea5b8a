package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Bigyayos/TiendaControl/infrastructure/database/postgres"
	"github.com/Bigyayos/TiendaControl/infrastructure/integrator/supabase"
	"github.com/Bigyayos/TiendaControl/infrastructure/integrator/supabase/supabaseclient"
	"github.com/Bigyayos/TiendaControl/infrastructure/repository"
	"github.com/Bigyayos/TiendaControl/infrastructure/storage"
	"github.com/Bigyayos/TiendaControl/internal/api"
	"github.com/Bigyayos/TiendaControl/internal/config"
	"github.com/Bigyayos/TiendaControl/internal/scheduler"
	"github.com/Bigyayos/TiendaControl/internal/usecases/authenticating"
	"github.com/Bigyayos/TiendaControl/internal/usecases/objectives"
	"github.com/Bigyayos/TiendaControl/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado a: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, cleanup := newBackend(ctx, cfg)
	defer cleanup()

	verifier, err := authenticating.NewStaticVerifier(cfg.Auth)
	if err != nil {
		logrus.WithError(err).Fatal("Error al preparar el verificador de credenciales")
	}
	authenticator := authenticating.NewService(verifier, cfg)

	reporter := reporting.NewService(backend)
	evaluator := objectives.NewService(backend)

	dailyDigestService := scheduler.NewDailyDigestService(reporter, evaluator, cfg)
	if err := dailyDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador del digest diario")
	} else {
		logrus.Info("Agendador del digest diario iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		backend,
		reporter,
		evaluator,
		authenticator,
		dailyDigestService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newBackend construye la capa de acceso a datos según la configuración:
// Postgres directo o la API PostgREST de Supabase.
func newBackend(ctx context.Context, cfg *config.Config) (*storage.Backend, func()) {
	switch cfg.App.Backend {
	case config.BackendSupabase:
		client, err := supabaseclient.NewClient(cfg.Supabase)
		if err != nil {
			logrus.WithError(err).Warn("Backend de Supabase no configurado; la API de datos responderá 503")
			return storage.NewNotConfiguredBackend(), func() {}
		}

		logrus.Info("Capa de acceso a datos: Supabase (PostgREST)")
		return supabase.NewBackend(client), func() {}

	case config.BackendPostgres:
		conn := pgconn(ctx, cfg.Database)

		logrus.Info("Capa de acceso a datos: Postgres directo")
		return repository.NewBackend(conn), func() { conn.Close() }

	default:
		logrus.Fatalf("Backend de almacenamiento desconocido: %s", cfg.App.Backend)
		return nil, nil
	}
}

// configureLogger configura el formato y comportamiento de los logs.
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
