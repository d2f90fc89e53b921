package utils

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"therapyconnect-service/internal/pkg/constvars"
)

var allowedImageExtensions = map[string]string{
	".jpg":  constvars.MIMEImageJPEG,
	".jpeg": constvars.MIMEImageJPEG,
	".png":  constvars.MIMEImagePNG,
	".webp": constvars.MIMEImageWEBP,
}

func ValidateImage(fileHeader *multipart.FileHeader, maxSizeInMegabytes int64) error {
	if fileHeader == nil {
		return errors.New("image is missing")
	}

	if fileHeader.Size > maxSizeInMegabytes*1024*1024 {
		return errors.New("file size exceeds the maximum limit")
	}

	if _, ok := allowedImageExtensions[strings.ToLower(filepath.Ext(fileHeader.Filename))]; !ok {
		return errors.New("invalid file format")
	}
	return nil
}

func ImageContentType(filename string) string {
	return allowedImageExtensions[strings.ToLower(filepath.Ext(filename))]
}

func ValidateUrlParamID(param string) error {
	if strings.TrimSpace(param) == "" {
		return errors.New("parameter is missing from url path")
	}
	return nil
}

// ParseOptionalFloat returns defaultValue for an empty query value.
func ParseOptionalFloat(raw string, defaultValue float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func ParseOptionalInt(raw string, defaultValue int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}
