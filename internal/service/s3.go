package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	appConfig "crm/backend/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// S3Store keeps photos in an S3 bucket. Selected when a bucket name is
// configured, otherwise the local disk store is used.
type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(ctx context.Context, cfg *appConfig.Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}

	// A custom endpoint means a local S3 stand-in, which takes any
	// static credentials. Production relies on the default chain.
	if cfg.S3Endpoint != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("test", "test", ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "loading aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, bucket: cfg.S3Bucket}, nil
}

func (s *S3Store) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if file == nil {
		return "", nil
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedContentType(contentType) {
		return "", fmt.Errorf("invalid file type, expected: %v, got: %s", allowedPhotoTypes, contentType)
	}

	key := fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixMilli(), filepath.Base(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "opening upload")
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("photo upload src close failed")
		}
	}()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrap(err, "uploading to s3")
	}

	return key, nil
}
