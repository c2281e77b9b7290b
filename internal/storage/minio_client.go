package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"pickmydish/internal/config"
)

var (
	// ErrFileTooLarge - файл превышает лимит размера
	ErrFileTooLarge = errors.New("файл превышает допустимый размер")
	// ErrUnsupportedFileType - содержимое не является поддерживаемым изображением
	ErrUnsupportedFileType = errors.New("неподдерживаемый тип файла")
)

// allowedImageTypes - фильтр по реальному содержимому, не по расширению
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Storage interface {
	UploadImage(ctx context.Context, prefix, fileName string, data []byte) (string, error)
	DeleteImage(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета %s: %w", cfg.MinIO.BucketName, err)
		}
		log.Printf("Создан бакет MinIO: %s", cfg.MinIO.BucketName)
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// UploadImage кладёт изображение под уникальным именем и возвращает
// относительный путь. Имена никогда не повторяются, перезаписи нет.
func (m *MinIOClient) UploadImage(ctx context.Context, prefix, fileName string, data []byte) (string, error) {
	if int64(len(data)) > m.cfg.MaxUploadSize {
		return "", fmt.Errorf("размер %d байт: %w", len(data), ErrFileTooLarge)
	}

	detected := mimetype.Detect(data)
	if !allowedImageTypes[detected.String()] {
		return "", fmt.Errorf("тип %s: %w", detected.String(), ErrUnsupportedFileType)
	}

	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = detected.Extension()
	}

	objectName := fmt.Sprintf("%s/%d-%s%s",
		prefix,
		time.Now().UnixNano(),
		uuid.New().String(),
		fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: detected.String(),
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return fmt.Sprintf("%s/%s", m.cfg.MinIO.BucketName, objectName), nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	objectName = strings.TrimPrefix(objectName, m.cfg.MinIO.BucketName+"/")

	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}
