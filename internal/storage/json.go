package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"e2esplit/internal/domain"
)

// SavePlan writes a full sweep plan to the configured plan path.
func (s *JSONStorage) SavePlan(plan *domain.Plan) error {
	return writeJSON(s.cfg.GetPlanPath(), plan)
}

// LoadPlan reads the last saved sweep plan.
func (s *JSONStorage) LoadPlan() (*domain.Plan, error) {
	data, err := os.ReadFile(s.cfg.GetPlanPath())
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	var plan domain.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	return &plan, nil
}

// SaveSummary writes a run summary keyed by the job index, so concurrent
// jobs never write the same file.
func (s *JSONStorage) SaveSummary(summary *domain.RunSummary) error {
	return writeJSON(s.cfg.GetSummaryPath(summary.Meta.Index), summary)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}
