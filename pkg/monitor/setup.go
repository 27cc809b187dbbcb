package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/LeJavaPython/TelemetryHealthCare/internal/database"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/config"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/modelstore"
	"github.com/LeJavaPython/TelemetryHealthCare/pkg/report"
)

// NewFromConfig assembles the full monitoring stack from application
// configuration: artifact store, classifier, report database, analyzer,
// monitor. The returned cleanup closes the report database.
func NewFromConfig(ctx context.Context, cfg *config.Config, source SampleSource, log zerolog.Logger) (*Monitor, func() error, error) {
	store, err := buildStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	classifier, err := modelstore.LoadClassifier(ctx, store, log)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.New(database.Config{Path: cfg.DatabasePath, Name: "reports"})
	if err != nil {
		return nil, nil, err
	}

	repo := report.NewRepository(db.Conn(), log)
	if err := repo.EnsureSchema(); err != nil {
		db.Close()
		return nil, nil, err
	}

	analyzer := NewAnalyzer(classifier, time.Duration(cfg.WindowHours)*time.Hour, log)
	return New(analyzer, source, repo, db, log), db.Close, nil
}

// Repository exposes the report history store for read-side consumers
// such as the trend analyzer.
func (m *Monitor) Repository() *report.Repository {
	return m.repo
}

// buildStore picks S3 when a bucket and key are configured, otherwise
// the local artifact path.
func buildStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (modelstore.Store, error) {
	if cfg.UsesS3() {
		return modelstore.NewS3Store(ctx, modelstore.S3Config{
			Region:    cfg.ModelRegion,
			Bucket:    cfg.ModelBucket,
			Key:       cfg.ModelKey,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		}, log)
	}
	return modelstore.LocalStore{Path: cfg.ModelPath}, nil
}
