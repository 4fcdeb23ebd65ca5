package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/summaro/internal/domain/entities"
	"github.com/johnquangdev/summaro/pkg/config"
)

// MinIOClient archives processed audio and digests in an S3 bucket
type MinIOClient struct {
	client *minio.Client
	bucket string
}

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client: minioClient,
		bucket: cfg.BucketName,
	}
	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}
	return client, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// AudioObjectName is the archive key of a stored file. Identical uploads
// share one object.
func AudioObjectName(file entities.StoredFile) string {
	ext := strings.ToLower(path.Ext(file.Name))
	key := file.ContentHash
	if key == "" {
		key = strings.TrimSuffix(file.Name, path.Ext(file.Name))
	}
	return "audio/" + key + ext
}

// DigestObjectName is the archive key of a digest payload
func DigestObjectName(id string) string {
	return "digests/" + id + ".json"
}

// ArchiveAudio copies a stored upload into the bucket
func (m *MinIOClient) ArchiveAudio(ctx context.Context, file entities.StoredFile, r io.Reader) (string, error) {
	object := AudioObjectName(file)
	if err := m.UploadFile(ctx, object, r, file.Size, "application/octet-stream"); err != nil {
		return "", err
	}
	return object, nil
}

// ArchiveDigest stores a digest payload next to its audio
func (m *MinIOClient) ArchiveDigest(ctx context.Context, id string, payload []byte) (string, error) {
	object := DigestObjectName(id)
	if err := m.UploadFile(ctx, object, bytes.NewReader(payload), int64(len(payload)), "application/json"); err != nil {
		return "", err
	}
	return object, nil
}

// UploadFile uploads a file to MinIO
func (m *MinIOClient) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return nil
}
