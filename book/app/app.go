package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/book-service/book/config"
	"github.com/Astemirdum/book-service/book/internal/handler"
	"github.com/Astemirdum/book-service/book/internal/repository"
	"github.com/Astemirdum/book-service/book/internal/server"
	"github.com/Astemirdum/book-service/book/internal/service"
	"github.com/Astemirdum/book-service/book/migrations"
	"github.com/Astemirdum/book-service/pkg/auth"
	"github.com/Astemirdum/book-service/pkg/circuit_breaker"
	"github.com/Astemirdum/book-service/pkg/kafka"
	"github.com/Astemirdum/book-service/pkg/logger"
	"github.com/Astemirdum/book-service/pkg/openid"
	"github.com/Astemirdum/book-service/pkg/postgres"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type publisher interface {
	service.EventPublisher
	Close() error
}

// Run serves the API until SIGINT or SIGTERM.
func Run(ctx context.Context, cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "book")
	defer log.Sync() //nolint:errcheck

	if cfg.Session.Secret == "" {
		return errors.New("SESSION_SECRET is required")
	}

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	events, err := newPublisher(cfg.Kafka, log)
	if err != nil {
		return errors.Wrap(err, "kafka producer")
	}
	defer func() {
		if err := events.Close(); err != nil {
			log.Warn("publisher close", zap.Error(err))
		}
	}()

	idp, err := newIdentityProvider(ctx, cfg.OpenID, log)
	if err != nil {
		return errors.Wrap(err, "identity provider")
	}

	bookRepo := repository.NewBookRepository(db, log)
	reservationRepo := repository.NewReservationRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)

	h := handler.New(
		service.NewBookService(bookRepo, reservationRepo, events, log),
		service.NewReservationService(reservationRepo, bookRepo, events, log),
		service.NewUserService(userRepo, log),
		idp,
		auth.NewSessions(cfg.Session),
		log,
	)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// Migrate applies pending migrations and returns.
func Migrate(cfg *config.Config) error {
	return postgres.Migrate(&cfg.Database, migrations.MigrationFiles)
}

func newPublisher(cfg kafka.Config, log *zap.Logger) (publisher, error) {
	if !cfg.Enable {
		log.Info("kafka disabled, lifecycle events are dropped")
		return kafka.NopPublisher{}, nil
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	cb := circuit_breaker.New(
		circuit_breaker.WithWindow(100),
		circuit_breaker.WithFailureRatio(0.2),
		circuit_breaker.WithOpenTimeout(time.Second),
		circuit_breaker.WithRecoveryRequests(2),
		circuit_breaker.WithOnStateChange(func(from, to circuit_breaker.Status) {
			log.Warn("event publisher breaker", zap.Stringer("from", from), zap.Stringer("to", to))
		}),
	)
	return kafka.NewPublisher(producer, cb), nil
}

func newIdentityProvider(ctx context.Context, cfg openid.Config, log *zap.Logger) (handler.IdentityProvider, error) {
	if !cfg.Enabled() {
		log.Warn("OIDC_ISSUER is not set, login is disabled")
		return openid.Disabled{}, nil
	}
	return openid.NewProvider(ctx, cfg)
}
