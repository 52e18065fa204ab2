// SPDX-License-Identifier: MIT

package dataset

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/katalvlaran/chartscale/scale"
)

// defaultS3Region is used when neither S3Config nor the environment names one.
const defaultS3Region = "us-east-1"

// ObjectGetter is the part of *s3.Client used by S3Source.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config holds explicit client parameters. Empty fields fall back to the
// default AWS credential and region chain.
type S3Config struct {
	Region          string
	Endpoint        string // optional, e.g. a MinIO URL
	PathStyle       bool
	AccessKeyID     string // optional static credentials
	SecretAccessKey string
	SessionToken    string
}

// NewS3Client builds an S3 client from cfg and the default AWS config chain.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = defaultS3Region
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// S3Source reads datasets stored as objects.
type S3Source struct {
	client ObjectGetter
}

// NewS3Source wraps client (usually an *s3.Client).
func NewS3Source(client ObjectGetter) *S3Source {
	return &S3Source{client: client}
}

// Fetch downloads bucket/key and decodes it by the key's extension.
func (s *S3Source) Fetch(ctx context.Context, bucket, key string) (scale.Dataset, error) {
	format, err := FormatFromPath(key)
	if err != nil {
		return nil, datasetErrorf(opFetch, err)
	}
	return s.FetchAs(ctx, bucket, key, format)
}

// FetchAs downloads bucket/key and decodes it as format.
func (s *S3Source) FetchAs(ctx context.Context, bucket, key string, format Format) (scale.Dataset, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, datasetErrorf(opFetch, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err))
	}
	defer out.Body.Close()

	data, err := Decode(format, out.Body)
	if err != nil {
		return nil, datasetErrorf(opFetch, err)
	}
	return data, nil
}
