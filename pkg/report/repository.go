package report

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StoredReport is one persisted report row.
type StoredReport struct {
	UUID      string
	CreatedAt time.Time
	Report    Report
}

// Repository persists reports to SQLite. Persistence is a process-edge
// concern: the pipeline itself never writes here, only the monitor does.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a report repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "reports").Logger(),
	}
}

// EnsureSchema creates the reports table when missing.
func (r *Repository) EnsureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS reports (
			uuid TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			window_end INTEGER NOT NULL,
			classification TEXT NOT NULL,
			confidence REAL NOT NULL,
			quality_score REAL NOT NULL,
			payload TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create reports table: %w", err)
	}
	return nil
}

// Save stores one report and returns its generated id.
func (r *Repository) Save(report Report) (string, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to serialize report: %w", err)
	}

	id := uuid.New().String()
	_, err = r.db.Exec(`
		INSERT INTO reports (uuid, created_at, window_end, classification, confidence, quality_score, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		id,
		time.Now().Unix(),
		report.Timestamp.Unix(),
		report.RhythmClassification,
		report.ConfidenceScore,
		report.DataQuality.QualityScore,
		string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert report: %w", err)
	}

	r.log.Debug().
		Str("uuid", id).
		Str("classification", report.RhythmClassification).
		Msg("Report stored")

	return id, nil
}

// GetByID loads one stored report. Returns (nil, nil) when absent.
func (r *Repository) GetByID(id string) (*StoredReport, error) {
	var stored StoredReport
	var createdAt int64
	var payload string

	err := r.db.QueryRow(`
		SELECT uuid, created_at, payload FROM reports WHERE uuid = ?
	`, id).Scan(&stored.UUID, &createdAt, &payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report %s: %w", id, err)
	}

	stored.CreatedAt = time.Unix(createdAt, 0).UTC()
	if err := json.Unmarshal([]byte(payload), &stored.Report); err != nil {
		return nil, fmt.Errorf("failed to parse stored report %s: %w", id, err)
	}
	return &stored, nil
}

// ListRecent returns up to limit reports, newest window first.
func (r *Repository) ListRecent(limit int) ([]StoredReport, error) {
	rows, err := r.db.Query(`
		SELECT uuid, created_at, payload
		FROM reports
		ORDER BY window_end DESC, created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent reports: %w", err)
	}
	defer rows.Close()

	var reports []StoredReport
	for rows.Next() {
		var stored StoredReport
		var createdAt int64
		var payload string

		if err := rows.Scan(&stored.UUID, &createdAt, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}

		stored.CreatedAt = time.Unix(createdAt, 0).UTC()
		if err := json.Unmarshal([]byte(payload), &stored.Report); err != nil {
			return nil, fmt.Errorf("failed to parse stored report %s: %w", stored.UUID, err)
		}
		reports = append(reports, stored)
	}
	return reports, rows.Err()
}

// Count returns the number of stored reports.
func (r *Repository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM reports`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return n, nil
}
