package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	s3config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/config"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/logging"
)

const presignExpires = 5 * time.Minute

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

func NewS3Client(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	awsCfg, err := s3config.LoadDefaultConfig(ctx,
		s3config.WithRegion(cfg.S3Region),
		s3config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
	}), nil
}

// AvatarStore hands out presigned URLs for student avatars. The API never
// proxies image bytes.
type AvatarStore struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
}

func NewAvatarStore(client *s3.Client, bucket string) *AvatarStore {
	return &AvatarStore{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
	}
}

// EnsureBucket creates the bucket, treating "already exists" as success.
func (s *AvatarStore) EnsureBucket(ctx context.Context) error {
	_, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusConflict {
			logging.FromContext(ctx).Info(ctx, "bucket already exists", zap.String("bucket", s.bucket))
			return nil
		}
		return fmt.Errorf("failed to create bucket %q: %w", s.bucket, err)
	}
	return nil
}

// AvatarKey names the object for a student's avatar. Only image extensions
// are accepted.
func AvatarKey(studentId uuid.UUID, filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: unsupported avatar extension %q", errdefs.ErrValidation, ext)
	}
	return "avatars/" + studentId.String() + ext, nil
}

func (s *AvatarStore) PresignUpload(ctx context.Context, key string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if ct, ok := allowedExtensions[strings.ToLower(path.Ext(key))]; ok {
		input.ContentType = aws.String(ct)
	}

	req, err := s.presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(presignExpires))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return req.URL, nil
}

func (s *AvatarStore) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpires))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}
	return req.URL, nil
}

// Delete removes the object. A missing key is not an error.
func (s *AvatarStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}
	return nil
}
