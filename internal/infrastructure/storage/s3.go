package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store persists uploads in Amazon S3 (or a compatible API). Objects are
// written under the uploads/ prefix; the bucket is expected to be fronted by
// the configured base URL so stored names stay retrievable as
// <base_url>/uploads/<name>.
type S3Store struct {
	uploader *manager.Uploader
	bucket   string
}

func NewS3Store(client *s3.Client, bucket string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	return &S3Store{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
	}, nil
}

// Save uploads the content under a collision-free stored name and returns
// that name.
func (s *S3Store) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	name := storedName(filename)
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(keyPrefix + name),
		Body:   content,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	return name, nil
}
