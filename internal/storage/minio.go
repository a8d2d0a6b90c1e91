package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/daniilsm/sickday-go/internal/config"
	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	Client     *minioSDK.Client
	BucketName string
)

func InitMinio() {
	BucketName = config.MinioBucket

	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccess, config.MinioSecret, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = client
	log.Println("Connected to MinIO")
}

// UploadProof stores one proof document and returns the object path the
// client should reference from a ticket's proof list. The uuid prefix keeps
// same-named uploads from clobbering each other.
func UploadProof(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (string, error) {
	objectName := fmt.Sprintf("proofs/%s%s", uuid.NewString(), filepath.Ext(filename))
	_, err := Client.PutObject(ctx, BucketName, objectName, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return objectName, nil
}
