package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ImageStore uploads dashboard images to the S3 bucket and derives the
// public URL stored verbatim on the owning document.
type ImageStore struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	prefix        string
	endpoint      string
	cdnDomain     string
}

func NewImageStore(client *s3.Client, presignClient *s3.PresignClient, bucket, prefix, endpoint, cdnDomain string) *ImageStore {
	return &ImageStore{
		client:        client,
		presignClient: presignClient,
		bucket:        bucket,
		prefix:        prefix,
		endpoint:      endpoint,
		cdnDomain:     cdnDomain,
	}
}

// Upload stores one file and returns its public URL.
func (s *ImageStore) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	key := fmt.Sprintf("%simg_%s%s", s.prefix, uuid.New().String(), ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.publicURL(key), nil
}

// PresignUpload returns a presigned PUT URL, the object key, and the
// public URL the browser should store on the document after uploading.
func (s *ImageStore) PresignUpload(ctx context.Context, filename, contentType string, expiresSeconds int64) (string, string, string, error) {
	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%simg_%s%s", s.prefix, uuid.New().String(), ext)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presignedReq, err := s.presignClient.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(expiresSeconds) * time.Second
	})
	if err != nil {
		return "", "", "", fmt.Errorf("failed to presign put object: %w", err)
	}

	return presignedReq.URL, key, s.publicURL(key), nil
}

func (s *ImageStore) publicURL(key string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", strings.TrimRight(s.cdnDomain, "/"), key)
	}
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
