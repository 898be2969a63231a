// Package audiostore keeps the raw recordings of audio dreams. Nothing
// reads them back yet; they are retained for a future transcription step.
package audiostore

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nguyentranbao-ct/dream-api/internal/config"
	"github.com/nguyentranbao-ct/dream-api/internal/models"
)

// Object describes one uploaded recording.
type Object struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Store interface {
	// Put saves obj and returns its location, or "" when storing is disabled.
	Put(ctx context.Context, obj Object) (string, error)
}

// New returns an S3 backed store when an audio bucket is configured and a
// store that discards recordings otherwise.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.Audio.Bucket == "" {
		return discard{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3Store(s3.NewFromConfig(awsCfg), cfg.Audio.Bucket, cfg.Audio.Prefix), nil
}

type discard struct{}

func (discard) Put(context.Context, Object) (string, error) {
	return "", nil
}

// PutObjectAPI is the part of the S3 client we use.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Store struct {
	client PutObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

func NewS3Store(client PutObjectAPI, bucket, prefix string) Store {
	return &s3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

func (s *s3Store) Put(ctx context.Context, obj Object) (string, error) {
	key := s.key(obj.Filename)
	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        obj.Body,
		ContentType: aws.String(contentType),
	}
	if obj.Size > 0 {
		input.ContentLength = aws.Int64(obj.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// key builds <prefix>/<yyyy>/<mm>/<dd>/<objectid>-<name>.
func (s *s3Store) key(filename string) string {
	name := unsafeChars.ReplaceAllString(path.Base(filename), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "audio"
	}
	day := s.now().UTC().Format("2006/01/02")
	return path.Join(s.prefix, day, models.NewObjectID().String()+"-"+name)
}
