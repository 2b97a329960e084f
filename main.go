package main

import (
	"context"
	"fmt"
	"os"

	"food-delivery/config"
	cliapi "food-delivery/internal/api/cli"
	"food-delivery/internal/domain"
	"food-delivery/internal/service"
	"food-delivery/internal/storage"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	cfg.SetupLogging()

	if err := run(context.Background(), cfg, os.Args); err != nil {
		logrus.WithError(err).Debug("command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cliapi.ExitCode(err))
	}
}

func run(ctx context.Context, cfg config.Config, args []string) error {
	backend, closeBackend, err := newBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeBackend()

	store, err := storage.NewRecordStore(ctx, backend)
	if err != nil {
		return err
	}
	if err := ensureAdmin(ctx, store); err != nil {
		return err
	}

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaOrderPublisher(writer)
		logrus.WithFields(logrus.Fields{"broker": cfg.KafkaBroker, "topic": cfg.KafkaOrdersTopic}).Info("order events enabled")
	}

	notifier := service.NewNotifier()
	handler := cliapi.NewHandler(
		service.NewAccountService(store),
		service.NewCatalogService(store, notifier),
		service.NewOrderService(store, publisher, service.DefaultQRGenerator{BaseURL: cfg.ReceiptBaseURL}),
		notifier,
	)
	return cliapi.NewApp(handler, os.Stdout).RunContext(ctx, args)
}

func newBackend(ctx context.Context, cfg config.Config) (storage.Backend, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendFile:
		backend, err := storage.NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		logrus.WithField("dir", cfg.DataDir).Debug("using file store")
		return backend, func() {}, nil
	case config.BackendPostgres:
		db := config.MustInitPostgres(cfg)
		backend := storage.NewPostgresBackend(db)
		if err := backend.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		logrus.WithField("host", cfg.DBHost).Debug("using postgres store")
		return backend, func() { db.Close() }, nil
	case config.BackendRedis:
		client := config.MustInitRedis(cfg)
		logrus.WithField("addr", cfg.RedisAddr()).Debug("using redis store")
		return storage.NewRedisBackend(client, cfg.RedisPrefix), func() { client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// ensureAdmin adds the built-in administrator when no account holds that
// role.
func ensureAdmin(ctx context.Context, store *storage.RecordStore) error {
	accounts, err := store.LoadAccounts(ctx)
	if err != nil {
		return err
	}
	for _, account := range accounts {
		if account.IsAdmin() {
			return nil
		}
	}

	accounts = append(accounts, domain.Account{
		FirstName: "Admin",
		LastName:  "Admin",
		BirthDate: "2000-01-01",
		Email:     "admin@example.com",
		Login:     "admin",
		Password:  "admin123",
		Address:   "Admin Office",
		Role:      domain.RoleAdmin,
	})
	if err := store.SaveAccounts(ctx, accounts); err != nil {
		return err
	}
	logrus.Info("administrator account created")
	return nil
}
