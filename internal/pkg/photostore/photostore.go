// Package photostore moves participant photos out of the ledger and into an
// S3 compatible bucket, leaving only the public URL on the user record.
package photostore

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vietanh2810/youthopia-api/internal/config"
)

const keyPrefix = "photos/"

var ErrInvalidDataURI = errors.New("invalid photo data URI")

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Store struct {
	client  objectPutter
	bucket  string
	baseURL string
	newKey  func() string
}

// New returns nil when no bucket is configured. A nil *Store keeps photos inline.
func New(ctx context.Context, conf *config.PhotosConfig) (*Store, error) {
	if conf == nil || conf.Bucket == "" {
		zap.L().Info("photo uploads disabled, photos stay inline")
		return nil, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(conf.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			conf.AccessKeyID, conf.AccessKeySecret, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("awsconfig.LoadDefaultConfig -> %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := conf.CDNBaseURL
	if baseURL == "" {
		baseURL = strings.TrimSuffix(conf.Endpoint, "/") + "/" + conf.Bucket
	}

	return newStore(client, conf.Bucket, baseURL), nil
}

func newStore(client objectPutter, bucket, baseURL string) *Store {
	return &Store{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		newKey:  func() string { return uuid.NewString() },
	}
}

// Upload stores a data URI photo and returns its public URL. Anything that is
// not a data URI, such as an already uploaded URL or an empty string, is
// returned unchanged, as is every photo when s is nil.
func (s *Store) Upload(ctx context.Context, photo string) (string, error) {
	if s == nil || !strings.HasPrefix(photo, "data:") {
		return photo, nil
	}

	contentType, body, err := decodeDataURI(photo)
	if err != nil {
		return "", err
	}

	key := keyPrefix + s.newKey() + extensions[contentType]
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s.client.PutObject -> %w", err)
	}

	return s.baseURL + "/" + key, nil
}

// decodeDataURI accepts data:<mime>;base64,<payload>.
func decodeDataURI(uri string) (string, []byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}

	contentType, isBase64 := strings.CutSuffix(header, ";base64")
	if !isBase64 {
		return "", nil, ErrInvalidDataURI
	}
	if _, ok := extensions[contentType]; !ok {
		return "", nil, fmt.Errorf("%w: unsupported type %q", ErrInvalidDataURI, contentType)
	}

	body, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}

	return contentType, body, nil
}
