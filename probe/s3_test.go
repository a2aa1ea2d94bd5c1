package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type mockLister struct {
	input *s3.ListObjectsV2Input
	err   error
}

func (m *mockLister) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	m.input = params
	if m.err != nil {
		return nil, m.err
	}
	return &s3.ListObjectsV2Output{}, nil
}

func TestS3Bucket_Check(t *testing.T) {
	lister := &mockLister{}
	p := &S3Bucket{Bucket: "backups", Client: lister}

	ok, err := p.Check(context.Background())
	if !ok || err != nil {
		t.Fatalf("Check() = %v, %v; want true, nil", ok, err)
	}
	if got := *lister.input.Bucket; got != "backups" {
		t.Errorf("Bucket = %q, want backups", got)
	}
	if got := *lister.input.MaxKeys; got != 1 {
		t.Errorf("MaxKeys = %d, want 1", got)
	}
}

func TestS3Bucket_CheckError(t *testing.T) {
	denied := errors.New("AccessDenied")
	p := &S3Bucket{Bucket: "backups", Client: &mockLister{err: denied}}

	ok, err := p.Check(context.Background())
	if ok || !errors.Is(err, denied) {
		t.Errorf("Check() = %v, %v; want false, %v", ok, err, denied)
	}
}

func TestS3Bucket_MissingTarget(t *testing.T) {
	if _, err := (&S3Bucket{Client: &mockLister{}}).Check(context.Background()); !errors.Is(err, ErrMissingTarget) {
		t.Errorf("Check() err = %v, want ErrMissingTarget", err)
	}
}

func TestNewS3Bucket(t *testing.T) {
	p := NewS3Bucket(S3Config{
		Endpoint:    "https://account.r2.cloudflarestorage.com",
		Bucket:      "backups",
		AccessKeyID: "key",
		SecretKey:   "secret",
	})

	if p.Client == nil {
		t.Fatal("Client = nil")
	}
	if p.Name() != "s3: backups" {
		t.Errorf("Name() = %q, want 's3: backups'", p.Name())
	}

	client := p.Client.(*s3.Client)
	if opts := client.Options(); opts.Region != "us-east-1" || !opts.UsePathStyle {
		t.Errorf("Options() region = %q path style = %v", opts.Region, opts.UsePathStyle)
	}
}
