// Package storage picks the document store backend named by the configuration.
package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"calcvault/internal/adapters/filesystem"
	"calcvault/internal/adapters/sqlite"
	"calcvault/internal/config"
	"calcvault/internal/ports"
)

// Open returns the configured store and a function releasing it
func Open(cfg *config.Config, log zerolog.Logger) (ports.DocumentStore, func() error, error) {
	path := cfg.ResolvedDataPath()

	switch cfg.Store {
	case config.StoreFile:
		store := filesystem.NewStore(path, log)
		log.Debug().Str("dir", store.Path()).Msg("using file store")
		return store, func() error { return nil }, nil
	case config.StoreSQLite, "":
		store, err := sqlite.Open(path, log)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("path", store.Path()).Msg("using sqlite store")
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
