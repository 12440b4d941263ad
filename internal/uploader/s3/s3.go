// Package s3 stores blobs in an S3 (or S3-compatible) bucket.
//
// The client uses the AWS SDK default credential chain: environment variables,
// shared credentials file, then IAM role.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"imageVault/internal/config"
	"imageVault/internal/uploader"
)

type Storage struct {
	client    *awss3.Client
	bucket    string
	publicURL string
}

func New(ctx context.Context, cfg config.S3) (*Storage, error) {
	const op = "uploader.s3.New"

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			// S3-compatible stores (minio and friends) need an explicit
			// endpoint and path-style addressing.
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Storage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

func (s *Storage) Store(ctx context.Context, data []byte, subjectID string) (*uploader.StoredObject, error) {
	start := time.Now()

	key := uploader.ObjectKey(subjectID, data)

	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(http.DetectContentType(data)),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return nil, &uploader.Error{Backend: "s3", Reason: err.Error()}
	}

	url := s.publicURL + "/" + key
	if s.publicURL == "" {
		url = fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	}

	return &uploader.StoredObject{
		URL:     url,
		Path:    key,
		Elapsed: time.Since(start),
	}, nil
}
