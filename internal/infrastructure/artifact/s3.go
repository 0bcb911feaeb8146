package artifact

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hiro2620/sphero-controll/internal/application/ports"
	"github.com/hiro2620/sphero-controll/internal/ui"
)

// S3Source serves application files from an S3 bucket. Fleet image
// pipelines publish the application bundle (entry point, requirements
// manifest, unit template) under a common prefix.
type S3Source struct {
	client *s3.Client
	bucket string
	prefix string
	// files are placed into the install directory
	files []string
	// downloads is everything fetched at stage time, a superset of files
	downloads []string
}

// NewS3Source creates a source over s3://bucket/prefix. extra lists
// files that are staged but not placed (requirements manifest, unit
// template).
func NewS3Source(client *s3.Client, bucket, prefix string, files []string, extra ...string) ports.ArtifactSource {
	downloads := append(append([]string(nil), files...), extra...)
	return &S3Source{
		client:    client,
		bucket:    bucket,
		prefix:    prefix,
		files:     files,
		downloads: downloads,
	}
}

// ParseS3URL splits an s3://bucket/prefix URL. ok is false when the
// source is not an S3 URL.
func ParseS3URL(source string) (bucket, prefix string, ok bool) {
	const scheme = "s3://"
	if !strings.HasPrefix(source, scheme) {
		return "", "", false
	}
	rest := strings.TrimPrefix(source, scheme)
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", false
	}
	return bucket, strings.TrimSuffix(prefix, "/"), true
}

// Stage downloads the bundle into a temporary directory
func (s *S3Source) Stage(ctx context.Context) (string, error) {
	dir, err := os.MkdirTemp("", "sphero-artifacts-")
	if err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}

	for _, name := range s.downloads {
		key := name
		if s.prefix != "" {
			key = s.prefix + "/" + name
		}

		ui.SubStep("Fetching s3://%s/%s", s.bucket, key)
		if err := s.download(ctx, key, filepath.Join(dir, name)); err != nil {
			return "", err
		}
	}

	return dir, nil
}

// Place copies the staged application files into the install directory
func (s *S3Source) Place(ctx context.Context, stagedDir, installDir string) error {
	return placeFiles(stagedDir, installDir, s.files)
}

// Describe names the source for log output
func (s *S3Source) Describe() string {
	if s.prefix == "" {
		return fmt.Sprintf("s3://%s", s.bucket)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.prefix)
}

func (s *S3Source) download(ctx context.Context, key, dst string) error {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to fetch s3://%s/%s: %w", s.bucket, key, err)
	}
	defer result.Body.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create staging directory for %s: %w", dst, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, result.Body); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return out.Close()
}
