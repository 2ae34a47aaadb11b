package routes

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/golang/snappy"
)

// ObjectGetter is the subset of the S3 client used by S3Source
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a route table stored as an S3 object
type S3Source struct {
	client ObjectGetter
	bucket string
	key    string
}

// ParseS3URL splits s3://bucket/key into its parts
func ParseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 URL %q: %w", raw, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("invalid S3 URL %q: scheme must be s3", raw)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URL %q: bucket and key are required", raw)
	}
	return bucket, key, nil
}

// NewS3Source builds an S3 client from the default AWS configuration chain,
// overridden by any region, endpoint or static credentials in opts.
func NewS3Source(ctx context.Context, raw string, opts Options) (*S3Source, error) {
	bucket, key, err := ParseS3URL(raw)
	if err != nil {
		return nil, err
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.S3Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.S3Region))
	}
	if opts.S3AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.S3AccessKey, opts.S3SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3SourceWithClient(client, bucket, key), nil
}

// NewS3SourceWithClient creates a source around an existing client
func NewS3SourceWithClient(client ObjectGetter, bucket, key string) *S3Source {
	return &S3Source{client: client, bucket: bucket, key: key}
}

// Records downloads and parses the object
func (s *S3Source) Records(ctx context.Context) ([]Record, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s, err)
	}
	defer out.Body.Close()

	var r io.Reader = out.Body
	if isSnappy(s.key) {
		r = snappy.NewReader(r)
	}

	records, err := ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s, err)
	}
	return records, nil
}

func (s *S3Source) String() string {
	return "s3://" + s.bucket + "/" + s.key
}

// Close is a no-op; the S3 client holds no per-source resources
func (s *S3Source) Close() error { return nil }
