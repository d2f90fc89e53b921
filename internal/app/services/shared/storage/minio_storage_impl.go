package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient   *minio.Client
	BucketName    string
	PublicBaseURL string
}

func NewMinioStorage(minioClient *minio.Client, bucketName, publicBaseURL string) contracts.Storage {
	return &minioStorage{
		MinioClient:   minioClient,
		BucketName:    bucketName,
		PublicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// UploadFile stores the object and returns its public URL.
func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, size int64, objectName, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return fmt.Sprintf(constvars.AvatarURLFormat, m.PublicBaseURL, m.BucketName, objectName), nil
}
