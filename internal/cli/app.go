package cli

import (
	"fmt"

	"github.com/avlasov/marketlens/internal/auth"
	"github.com/avlasov/marketlens/internal/config"
	"github.com/avlasov/marketlens/internal/logger"
	"github.com/avlasov/marketlens/pkg/catalog"
	"github.com/avlasov/marketlens/pkg/session"
	"github.com/avlasov/marketlens/pkg/storage"
)

// app bundles the wired components every command needs: configuration,
// logging, the persistence port and the loaded catalog.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	port    storage.Port
	catalog *catalog.Catalog
	store   *session.Store
	auth    *auth.Manager

	closers []func() error
}

// openApp loads configuration, initializes logging and storage, and reads
// the seed datasets. Commands call this in their RunE.
func openApp() (*app, error) {
	cfg, err := config.NewLoader(cfgFile).Load()
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log, err := logger.New(logger.Config{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: cfg.Logging.Console,
		Pretty:  cfg.Logging.Pretty,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{cfg: cfg, log: log}
	a.closers = append(a.closers, log.Close)

	port, err := openPort(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.port = port
	if c, ok := port.(interface{ Close() error }); ok {
		a.closers = append(a.closers, c.Close)
	}

	cat, err := catalog.NewLoader(cfg.DataDir, log.GetZerolog()).Load()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.catalog = cat

	a.store = session.NewStore(port, log.GetZerolog())
	a.auth = auth.NewManager(port, log.GetZerolog())

	return a, nil
}

// openPort creates the persistence backend the configuration selects.
func openPort(cfg *config.Config) (storage.Port, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return storage.NewSQLiteStore(cfg.Storage.DBPath)
	default:
		return storage.NewFileStore(cfg.Storage.Dir)
	}
}

// Close releases resources in reverse acquisition order.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}
