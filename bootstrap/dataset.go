package bootstrap

import (
	"errors"
	"fmt"

	"argus/config"
	"argus/metrics"
	"argus/storage"

	"go.uber.org/zap"
)

// InitStore loads the alert dataset and builds the immutable store. A
// missing or empty dataset is fatal: the engine has nothing to serve.
func InitStore(cfg *config.Config, sugar *zap.SugaredLogger) (*storage.Store, error) {
	alerts, err := storage.LoadFile(cfg.Dataset.Path, sugar)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyDataset) {
			return nil, fmt.Errorf("dataset %s is missing or empty: %w\n"+
				"  Remediation: generate one with 'argus dataset generate --output %s'",
				cfg.Dataset.Path, err, cfg.Dataset.Path)
		}
		return nil, fmt.Errorf("failed to load dataset %s: %w", cfg.Dataset.Path, err)
	}

	store, err := storage.NewStore(alerts, sugar)
	if err != nil {
		return nil, fmt.Errorf("failed to build alert store: %w", err)
	}

	metrics.DatasetAlerts.Set(float64(store.Len()))
	sugar.Infow("Dataset loaded",
		"path", cfg.Dataset.Path,
		"alerts", store.Len())

	return store, nil
}
