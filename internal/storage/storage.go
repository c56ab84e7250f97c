package storage

import (
	"e2esplit/internal/config"
	"e2esplit/internal/domain"
)

// Storage persists shard plans and run summaries as CI artifacts.
type Storage interface {
	SavePlan(plan *domain.Plan) error
	LoadPlan() (*domain.Plan, error)
	SaveSummary(summary *domain.RunSummary) error
}

// JSONStorage stores artifacts as JSON files under the configured output dir.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's artifact paths.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
