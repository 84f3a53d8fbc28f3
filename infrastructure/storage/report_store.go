package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"cart_automation/domain/entities"
)

const reportFile = "cart_reports.json"

// AuditRecord is one saved audit
type AuditRecord struct {
	At      time.Time            `json:"at"`
	Summary entities.CartSummary `json:"summary"`
}

type ReportStore struct {
	historyPath string
}

// NewReportStore - creates report history storage inside dir
func NewReportStore(dir string) (*ReportStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &ReportStore{
		historyPath: filepath.Join(dir, reportFile),
	}, nil
}

// Append - adds an audit to the saved history
func (s *ReportStore) Append(record AuditRecord) error {
	history, err := s.LoadHistory()
	if err != nil {
		return err
	}

	history = append(history, record)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.historyPath, data, 0644)
}

// LoadHistory - loads saved audits, oldest first
func (s *ReportStore) LoadHistory() ([]AuditRecord, error) {
	data, err := os.ReadFile(s.historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []AuditRecord{}, nil
		}
		return nil, err
	}

	var history []AuditRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}

	return history, nil
}
