//go:generate moq -out internal/mocks/uploader_moq.go -pkg mocks . Uploader

package s3Store

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Uploader streams objects to S3.
type Uploader interface {
	UploadWithContext(ctx aws.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// Store writes downloads into an S3 bucket. The destination directory is used as key prefix.
type Store struct {
	uploader Uploader
	bucket   string
}

func New(uploader Uploader, bucket string) *Store {
	return &Store{
		uploader: uploader,
		bucket:   bucket,
	}
}

// NewFromSession creates a store uploading through a multipart uploader built from sess.
func NewFromSession(sess *session.Session, bucket string) *Store {
	return New(s3manager.NewUploader(sess), bucket)
}

// Save uploads body under prefix/name and returns its s3:// location.
func (s *Store) Save(ctx context.Context, prefix, name string, body io.Reader) (string, error) {
	key := strings.TrimPrefix(path.Join(prefix, name), "/")
	location := "s3://" + s.bucket + "/" + key

	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	return location, err
}
