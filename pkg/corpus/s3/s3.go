package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/corpustools/standoff/pkg/corpus"
)

// CorpusSource is a corpus.Source implementation that lists and reads
// corpus files from an Amazon S3 bucket. It uses the AWS SDK v2 for Go.
//
// This source is useful when annotated corpora are stored in object
// storage instead of the local filesystem.
type CorpusSource struct {
	bucket string
	client *s3.Client
}

// NewCorpusSourceWithClient creates a new CorpusSource using an existing
// s3.Client. This is useful if you want to reuse a preconfigured AWS
// client (e.g., with custom middleware or credentials).
func NewCorpusSourceWithClient(bucket string, client *s3.Client) *CorpusSource {
	return &CorpusSource{
		bucket: bucket,
		client: client,
	}
}

// NewCorpusSourceParams defines the configuration parameters for creating
// a new CorpusSource.
//
// Bucket specifies the S3 bucket name.
// Endpoint allows overriding the S3 endpoint (useful for S3-compatible
// storage like MinIO).
// Region specifies the AWS region.
// AccessKey and SecretKey provide static credentials.
type NewCorpusSourceParams struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewCorpusSource creates a new CorpusSource using the provided
// parameters. It initializes an AWS S3 client with static credentials and
// the given endpoint/region.
func NewCorpusSource(ctx context.Context, params NewCorpusSourceParams) (*CorpusSource, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(params.Region),
		config.WithBaseEndpoint(params.Endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			params.AccessKey,
			params.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return &CorpusSource{
		bucket: params.Bucket,
		client: client,
	}, nil
}

// Groups lists every object under root (treated as a key prefix) and
// groups objects by their prefix-relative key with the extension stripped.
func (s *CorpusSource) Groups(ctx context.Context, root string, exts []string) ([]corpus.Group, error) {
	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		wanted[ext] = true
	}

	prefix := strings.TrimSuffix(root, "/")
	if prefix != "" {
		prefix += "/"
	}

	groups := make(map[string]corpus.Group)
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list corpus objects: %w", err)
		}
		for _, obj := range page.Contents {
			objKey := aws.ToString(obj.Key)
			ext := path.Ext(objKey)
			if !wanted[ext] {
				continue
			}

			key := strings.TrimSuffix(strings.TrimPrefix(objKey, prefix), ext)
			group, ok := groups[key]
			if !ok {
				group = corpus.Group{Key: key, Files: make(map[string]string, len(exts))}
			}
			group.Files[ext] = objKey
			groups[key] = group
		}
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]corpus.Group, 0, len(keys))
	for _, key := range keys {
		out = append(out, groups[key])
	}
	return out, nil
}

// ReadFile downloads one object and returns its bytes unmodified.
func (s *CorpusSource) ReadFile(ctx context.Context, path string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get corpus object: %w", err)
	}
	defer result.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, result.Body); err != nil {
		return nil, fmt.Errorf("failed to read corpus object: %w", err)
	}
	return buf.Bytes(), nil
}
