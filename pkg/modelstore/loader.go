package modelstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/LeJavaPython/TelemetryHealthCare/pkg/inference"
)

// LoadClassifier fetches, decodes, and assembles a predictor. Meant to
// run once at startup; the returned classifier is immutable and safe to
// share across goroutines.
func LoadClassifier(ctx context.Context, store Store, log zerolog.Logger) (inference.Classifier, error) {
	data, err := store.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch model artifact: %w", err)
	}

	artifact, err := DecodeArtifact(data)
	if err != nil {
		return nil, err
	}

	classifier, err := BuildClassifier(artifact)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("model_type", artifact.ModelType).
		Strs("labels", artifact.Labels).
		Strs("features", artifact.FeatureNames).
		Msg("Model loaded")

	return classifier, nil
}

// LoadMetadata fetches and parses the JSON metadata sidecar.
func LoadMetadata(ctx context.Context, store Store) (*Metadata, error) {
	data, err := store.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch model metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse model metadata: %w", err)
	}
	return &meta, nil
}
