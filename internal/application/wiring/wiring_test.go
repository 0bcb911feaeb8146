package wiring

import (
	"context"
	"testing"

	"github.com/hiro2620/sphero-controll/internal/config"
	"github.com/hiro2620/sphero-controll/internal/infrastructure/artifact"
)

func TestNewContainerWithLocalSource(t *testing.T) {
	cfg := config.Default()
	cfg.Artifacts.Source = t.TempDir()

	container, err := NewContainer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewContainer() returned error: %v", err)
	}
	if container.ProvisionHandler == nil || container.VerifyHandler == nil || container.StatusHandler == nil {
		t.Error("container is missing handlers")
	}
}

func TestS3SourceUsesAWSBlockWithoutReportSink(t *testing.T) {
	cfg := config.Default()
	cfg.Artifacts.Source = "s3://fleet-artifacts/sphero"
	cfg.AWS = &config.AWSConfig{
		Region:          "us-east-1",
		Endpoint:        "http://localhost:4566",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
	}

	source, err := newArtifactSource(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newArtifactSource() returned error: %v", err)
	}
	if _, ok := source.(*artifact.S3Source); !ok {
		t.Fatalf("source = %T, expected *artifact.S3Source", source)
	}
	if source.Describe() != "s3://fleet-artifacts/sphero" {
		t.Errorf("Describe() = %s", source.Describe())
	}
}

func TestLocalSourceForPlainDirectory(t *testing.T) {
	cfg := config.Default()
	cfg.Artifacts.Source = t.TempDir()

	source, err := newArtifactSource(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newArtifactSource() returned error: %v", err)
	}
	if _, ok := source.(*artifact.LocalSource); !ok {
		t.Fatalf("source = %T, expected *artifact.LocalSource", source)
	}
}

func TestNoPublishersWithoutReportConfig(t *testing.T) {
	cfg := config.Default()

	publishers, err := newReportPublishers(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newReportPublishers() returned error: %v", err)
	}
	if len(publishers) != 0 {
		t.Errorf("expected no publishers, got %d", len(publishers))
	}
}
