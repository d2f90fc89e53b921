package contracts

import (
	"context"
	"io"
)

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, size int64, objectName, contentType string) (string, error)
}
