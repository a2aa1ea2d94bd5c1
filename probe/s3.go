package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Lister is the subset of the S3 client used by the bucket probe.
type S3Lister interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Config describes how to reach an S3-compatible bucket.
type S3Config struct {
	Endpoint    string // custom endpoint for S3-compatible services (optional)
	Region      string // default: us-east-1
	Bucket      string
	AccessKeyID string
	SecretKey   string
}

// NewS3Client builds an S3 client with static credentials.
func NewS3Client(cfg S3Config) *s3.Client {
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	awsConfig := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		awsConfig.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		// S3-compatible services rarely support virtual-hosted buckets.
		o.UsePathStyle = cfg.Endpoint != ""
	})
}

// S3Bucket checks that a bucket can be listed.
type S3Bucket struct {
	Bucket  string
	Timeout time.Duration // request timeout (default 5s)
	Client  S3Lister
}

// NewS3Bucket creates a bucket probe with a client built from cfg.
func NewS3Bucket(cfg S3Config) *S3Bucket {
	return &S3Bucket{Bucket: cfg.Bucket, Client: NewS3Client(cfg)}
}

// Name returns "s3: <bucket>".
func (p *S3Bucket) Name() string {
	return "s3: " + p.Bucket
}

// Check lists at most one object from the bucket.
func (p *S3Bucket) Check(ctx context.Context) (bool, error) {
	if p.Bucket == "" || p.Client == nil {
		return false, ErrMissingTarget
	}

	ctx, cancel := context.WithTimeout(ctx, orDefault(p.Timeout))
	defer cancel()

	_, err := p.Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(p.Bucket),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return false, fmt.Errorf("bucket %s not reachable: %w", p.Bucket, err)
	}
	return true, nil
}
