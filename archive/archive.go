// Package archive exports posts and their comments as JSON objects to S3.
package archive

import (
	"bloggo/blog"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/gommon/log"
)

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Exporter struct {
	client ObjectPutter
	bucket string
	prefix string
}

func NewExporter(client ObjectPutter, bucket, prefix string) *Exporter {
	return &Exporter{client: client, bucket: bucket, prefix: prefix}
}

// NewS3Exporter builds an exporter from the default AWS configuration chain.
// A non-empty endpoint targets an S3 compatible store such as LocalStack.
func NewS3Exporter(ctx context.Context, bucket, prefix, endpoint string) (*Exporter, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return NewExporter(client, bucket, prefix), nil
}

func Key(prefix string, id int64) string {
	return path.Join(prefix, "posts", fmt.Sprintf("%d.json", id))
}

// Export writes one object per post and returns how many were written.
func (x *Exporter) Export(ctx context.Context, posts []blog.PostDetail) (int, error) {
	for i, p := range posts {
		body, err := json.Marshal(p)
		if err != nil {
			return i, fmt.Errorf("failed to marshal post %d: %w", p.ID, err)
		}

		key := Key(x.prefix, p.ID)
		_, err = x.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(x.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(body),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			return i, fmt.Errorf("failed to save post %d: %w", p.ID, err)
		}
		log.Debugf("exported post %d to s3://%s/%s", p.ID, x.bucket, key)
	}
	return len(posts), nil
}
