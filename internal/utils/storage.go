package utils

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ahmadqo/school-management-system/internal/config"
)

// ArchiveService pushes database backups and generated certificates to
// a MinIO bucket. It is optional: callers hold a nil *ArchiveService
// when no endpoint is configured.
type ArchiveService struct {
	client   *minio.Client
	bucket   string
	endpoint string
}

func NewArchiveService(cfg *config.ArchiveConfig) (*ArchiveService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.User, cfg.Password, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return &ArchiveService{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: fmt.Sprintf("%s://%s", scheme, cfg.Endpoint),
	}, nil
}

// UploadBackup stores a database snapshot under backups/ with a
// timestamped object name and returns the object URL.
func (s *ArchiveService) UploadBackup(ctx context.Context, data []byte) (string, error) {
	objectName := fmt.Sprintf("backups/%s-%s.db",
		time.Now().Format("20060102-150405"),
		uuid.New().String()[:8],
	)

	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload backup: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, objectName), nil
}

// UploadPDF stores a generated certificate under certificates/.
func (s *ArchiveService) UploadPDF(ctx context.Context, name string, data []byte) (string, error) {
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "/", "-")
	objectName := fmt.Sprintf("certificates/%s-%s.pdf", name, uuid.New().String()[:8])

	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload PDF: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, objectName), nil
}
