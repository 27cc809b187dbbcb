package modelstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// S3Config locates an artifact object in an S3 bucket. Static
// credentials are optional; when empty the default provider chain
// applies.
type S3Config struct {
	Region    string
	Bucket    string
	Key       string
	AccessKey string
	SecretKey string
}

// S3Store downloads artifacts from S3.
type S3Store struct {
	downloader *manager.Downloader
	bucket     string
	key        string
	log        zerolog.Logger
}

// NewS3Store builds an S3-backed artifact store.
func NewS3Store(ctx context.Context, cfg S3Config, log zerolog.Logger) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &S3Store{
		downloader: manager.NewDownloader(s3.NewFromConfig(awsCfg)),
		bucket:     cfg.Bucket,
		key:        cfg.Key,
		log:        log.With().Str("component", "model_store").Logger(),
	}, nil
}

// Fetch downloads the artifact object into memory.
func (s *S3Store) Fetch(ctx context.Context) ([]byte, error) {
	buf := manager.NewWriteAtBuffer(nil)
	n, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download model artifact s3://%s/%s: %w", s.bucket, s.key, err)
	}

	s.log.Info().
		Str("bucket", s.bucket).
		Str("key", s.key).
		Int64("bytes", n).
		Msg("Downloaded model artifact")

	return buf.Bytes(), nil
}
