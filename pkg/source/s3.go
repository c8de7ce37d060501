package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// DefaultRegion is used when S3Config.Region is empty.
const DefaultRegion = "us-east-1"

// ErrS3Config is returned by NewS3 when required settings are missing.
var ErrS3Config = errors.New("source: incomplete s3 configuration")

// S3Config holds the settings for an S3-compatible bucket provider.
type S3Config struct {
	// Bucket is the bucket name (required).
	Bucket string `env:"LINGO_S3_BUCKET"`

	// AccessKey is the access key id (required).
	AccessKey string `env:"LINGO_S3_ACCESS_KEY"`

	// SecretKey is the secret access key (required).
	SecretKey string `env:"LINGO_S3_SECRET_KEY"`

	// Endpoint is a custom endpoint URL for MinIO and other S3-compatible
	// services (optional).
	Endpoint string `env:"LINGO_S3_ENDPOINT"`

	// Region is the bucket region (default: us-east-1).
	Region string `env:"LINGO_S3_REGION"`

	// Prefix is prepended to every key, so one bucket can hold several
	// translation roots (optional).
	Prefix string `env:"LINGO_S3_PREFIX"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"LINGO_S3_PATH_STYLE"`
}

func (c *S3Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
}

func (c S3Config) validate() error {
	var missing []string
	if c.Bucket == "" {
		missing = append(missing, "bucket")
	}
	if c.AccessKey == "" {
		missing = append(missing, "access key")
	}
	if c.SecretKey == "" {
		missing = append(missing, "secret key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrS3Config, strings.Join(missing, ", "))
	}
	return nil
}

// S3 serves translation files from an S3-compatible bucket. Paths map to
// object keys under the configured prefix; MkdirAll is a no-op because
// object stores have no directories.
type S3 struct {
	client *s3.Client
	cfg    S3Config
}

var _ Provider = (*S3)(nil)

// NewS3 builds an S3 provider from the given configuration.
func NewS3(cfg S3Config) (*S3, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3{client: s3.New(s3.Options{}, opts...), cfg: cfg}, nil
}

// key maps a provider path to an object key under the configured prefix.
func (s *S3) key(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.TrimPrefix(path.Clean(p), "/")
	if s.cfg.Prefix != "" {
		return path.Join(s.cfg.Prefix, p)
	}
	return p
}

func (s *S3) ReadFile(ctx context.Context, p string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.key(p)),
	})
	if err != nil {
		return nil, wrapS3Error(err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", p, err)
	}
	return data, nil
}

func (s *S3) WriteFile(ctx context.Context, p string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(s.key(p)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return wrapS3Error(err)
	}
	return nil
}

func (s *S3) Exists(ctx context.Context, p string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.key(p)),
	})
	if err != nil {
		wrapped := wrapS3Error(err)
		if errors.Is(wrapped, fs.ErrNotExist) {
			// A bare language folder has no object of its own; any key
			// below it still marks it as present.
			return s.hasPrefix(ctx, s.key(p)+"/")
		}
		return false, wrapped
	}
	return true, nil
}

func (s *S3) MkdirAll(ctx context.Context, p string) error {
	return nil
}

func (s *S3) ListDirs(ctx context.Context, p string) ([]string, error) {
	prefix := s.key(p) + "/"
	input := &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.cfg.Bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	}

	var dirs []string
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err)
		}
		for _, cp := range page.CommonPrefixes {
			name := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(cp.Prefix), prefix), "/")
			if name != "" {
				dirs = append(dirs, name)
			}
		}
	}
	slices.Sort(dirs)
	return dirs, nil
}

// hasPrefix reports whether any object key starts with prefix.
func (s *S3) hasPrefix(ctx context.Context, prefix string) (bool, error) {
	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.cfg.Bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return false, wrapS3Error(err)
	}
	return aws.ToInt32(out.KeyCount) > 0, nil
}

// wrapS3Error folds the SDK's missing-object errors into fs.ErrNotExist so
// callers can use errors.Is regardless of backend.
func wrapS3Error(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return fmt.Errorf("%w: %v", fs.ErrNotExist, err)
		}
	}

	var notFound *types.NoSuchKey
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %v", fs.ErrNotExist, err)
	}
	return err
}
