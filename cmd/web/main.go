package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/carewell/eldercare/internal/broker"
	"github.com/carewell/eldercare/internal/db"
	"github.com/carewell/eldercare/internal/envstruct"
	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/forms"
	"github.com/carewell/eldercare/internal/logging"
	"github.com/carewell/eldercare/internal/pprofserver"
	"github.com/carewell/eldercare/internal/repositories"
	"github.com/carewell/eldercare/internal/speech"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	htmx           *htmx.HTMX
	formValidator  *forms.Validator
	sink           forms.Sink
	announcer      speech.Announcer
	speechBroker   *broker.ChannelBroker[string, string]
	reminders      *repositories.ReminderRepository
	contacts       *repositories.ContactRepository
	residents      *repositories.ResidentRepository
	conversations  *repositories.ConversationRepository
	health         *repositories.HealthRepository
}

type configuration struct {
	// Addr is the address the server listens on, e.g. "localhost:4000".
	// Use port 0 to let the OS pick a free port.
	Addr string `env:"ELDERCARE_ADDR" envDefault:"localhost:4000"`
	// PprofPort is the localhost port for the pprof server.
	PprofPort string `env:"ELDERCARE_PPROF_PORT" envDefault:":6060"`
	// SQLiteURL is the database path or ":memory:".
	SQLiteURL string `env:"ELDERCARE_SQLITE_URL" envDefault:"./eldercare.sqlite"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var config configuration
	if err := envstruct.Populate(&config, lookupEnv); err != nil {
		return errors.Wrap(err, "parse configuration")
	}

	// pprof listens on localhost so that it's not open to the world.
	pprofserver.Launch(config.PprofPort, logger)

	dbs, err := db.NewDatabase(ctx, config.SQLiteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	go dbs.StartOptimizer(ctx)

	logger.LogAttrs(ctx, slog.LevelInfo, "connected to database", slog.String("url", config.SQLiteURL))

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite.DB, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour

	speechBroker := broker.NewChannelBroker[string, string]()
	go speechBroker.Start()
	defer speechBroker.Stop()

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		htmx:           htmx.New(),
		formValidator:  forms.NewValidator(),
		sink:           forms.NewAcceptingSink(logger),
		announcer:      speech.NewBrokerAnnouncer(speechBroker, logger),
		speechBroker:   speechBroker,
		reminders:      repositories.NewReminderRepository(dbs, logger),
		contacts:       repositories.NewContactRepository(dbs, logger),
		residents:      repositories.NewResidentRepository(dbs, logger),
		conversations:  repositories.NewConversationRepository(dbs, logger),
		health:         repositories.NewHealthRepository(dbs, logger),
	}

	return app.configureAndStartServer(ctx, config.Addr)
}

func main() {
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Error("load .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(context.Background(), logger, os.LookupEnv); err != nil {
		logger.Error("server error", errors.SlogError(err))
		os.Exit(1)
	}
}
