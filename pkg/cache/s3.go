package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/otastrings/otastrings/pkg/translations"
)

// S3Config configures the S3 snapshot provider.
type S3Config struct {
	// Region is the bucket region, e.g. "us-east-1".
	Region string
	// Bucket holds the published snapshots.
	Bucket string
	// Key is the object key of the TranslationSet JSON document.
	Key string
	// AccessKey and SecretKey are static credentials.
	AccessKey string
	SecretKey string
	// Endpoint overrides the S3 endpoint for S3-compatible storage
	// (MinIO, R2). Leave empty for AWS.
	Endpoint string
	// PathStyle forces path-style addressing, required by most
	// S3-compatible services.
	PathStyle bool
}

func (c S3Config) validate() error {
	if c.Region == "" {
		return errors.Join(ErrInvalidS3Config, errors.New("region is required"))
	}
	if c.Bucket == "" {
		return errors.Join(ErrInvalidS3Config, errors.New("bucket is required"))
	}
	if c.Key == "" {
		return errors.Join(ErrInvalidS3Config, errors.New("object key is required"))
	}
	return nil
}

// S3Provider loads a TranslationSet snapshot from an object in S3-compatible
// storage, for deployments that publish fetched snapshots to a bucket and
// seed whole fleets from it. A missing object yields an empty set.
type S3Provider struct {
	client *s3.Client
	cfg    S3Config
}

// NewS3Provider creates a provider reading the snapshot object described by
// cfg.
func NewS3Provider(cfg S3Config) (*S3Provider, error) {
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

	return &S3Provider{
		client: s3.New(s3.Options{}, opts...),
		cfg:    cfg,
	}, nil
}

// Load implements Provider.
func (p *S3Provider) Load() (translations.TranslationSet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	out, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.cfg.Bucket),
		Key:    aws.String(p.cfg.Key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return translations.TranslationSet{}, nil
		}
		return nil, fmt.Errorf("reading snapshot object %q: %w", p.cfg.Key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot object %q: %w", p.cfg.Key, err)
	}

	var set translations.TranslationSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, errors.Join(ErrInvalidSnapshot, fmt.Errorf("parsing object %q: %w", p.cfg.Key, err))
	}

	return set, nil
}

var _ Provider = (*S3Provider)(nil)
