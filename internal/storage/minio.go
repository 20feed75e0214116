package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"trackforce/internal/config"
)

// Connect initializes the MinIO client used for payslip storage and makes
// sure the configured bucket exists.
func Connect(cfg config.MinioConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio connection failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		log.Warn().Err(err).Str("bucket", cfg.Bucket).Msg("failed to check bucket existence")
	} else if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			log.Warn().Err(err).Str("bucket", cfg.Bucket).Msg("failed to create bucket")
		} else {
			log.Info().Str("bucket", cfg.Bucket).Msg("created bucket")
		}
	}

	return client, nil
}
