// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package imaging

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// # S3 Object Store

// S3Options locates the bucket. An Endpoint switches to path-style
// addressing for S3-compatible providers such as R2 or MinIO.
type S3Options struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// S3Store writes objects to an S3 bucket.
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store loads the AWS configuration and builds the client.
// Static credentials are used when both key parts are set, the default
// provider chain otherwise.
func NewS3Store(context context.Context, options S3Options) (*S3Store, error) {
	if options.Bucket == "" {
		return nil, fmt.Errorf("imaging: bucket is required")
	}

	loadOptions := []func(*config.LoadOptions) error{config.WithRegion(options.Region)}
	if options.AccessKeyID != "" && options.SecretAccessKey != "" {
		loadOptions = append(loadOptions, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(options.AccessKeyID, options.SecretAccessKey, ""),
		))
	}

	awsConfig, err := config.LoadDefaultConfig(context, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("imaging: failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if options.Endpoint != "" {
			o.BaseEndpoint = aws.String(options.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, bucket: options.Bucket}, nil
}

// Put uploads the object. Keys are content addressed, so the object is cached as immutable.
func (store *S3Store) Put(context context.Context, key string, body []byte, contentType string) error {
	_, err := store.client.PutObject(context, &s3.PutObjectInput{
		Bucket:        aws.String(store.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return fmt.Errorf("imaging: failed to put %s: %w", key, err)
	}
	return nil
}

// Delete removes the object. Deleting a missing key succeeds.
func (store *S3Store) Delete(context context.Context, key string) error {
	_, err := store.client.DeleteObject(context, &s3.DeleteObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("imaging: failed to delete %s: %w", key, err)
	}
	return nil
}
