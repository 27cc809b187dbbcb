package modelstore

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/LeJavaPython/TelemetryHealthCare/pkg/inference"
)

// EncodeArtifact serializes an artifact into its binary wire form.
func EncodeArtifact(a *Artifact) ([]byte, error) {
	data, err := msgpack.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to encode model artifact: %w", err)
	}
	return data, nil
}

// DecodeArtifact parses the binary artifact form and checks its
// structural coherence. Anything unusable comes back as a
// ConfigurationError, since a malformed artifact means the deployment is
// broken, not the input data.
func DecodeArtifact(data []byte) (*Artifact, error) {
	var a Artifact
	if err := msgpack.Unmarshal(data, &a); err != nil {
		return nil, &inference.ConfigurationError{Message: "model artifact is not decodable", Err: err}
	}

	if a.SchemaVersion != ArtifactSchemaVersion {
		return nil, &inference.ConfigurationError{
			Message: fmt.Sprintf("unsupported artifact schema version %d, want %d", a.SchemaVersion, ArtifactSchemaVersion),
		}
	}
	if len(a.FeatureNames) == 0 {
		return nil, &inference.ConfigurationError{Message: "artifact declares no feature names"}
	}
	if len(a.FeatureNames) != len(a.Scaler.Center) {
		return nil, &inference.ConfigurationError{
			Message: fmt.Sprintf("artifact declares %d features but the scaler carries %d",
				len(a.FeatureNames), len(a.Scaler.Center)),
		}
	}

	return &a, nil
}
