package wiring

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hiro2620/sphero-controll/internal/application/commands"
	"github.com/hiro2620/sphero-controll/internal/application/ports"
	"github.com/hiro2620/sphero-controll/internal/application/queries"
	"github.com/hiro2620/sphero-controll/internal/config"
	"github.com/hiro2620/sphero-controll/internal/executor"
	"github.com/hiro2620/sphero-controll/internal/infrastructure/apt"
	"github.com/hiro2620/sphero-controll/internal/infrastructure/artifact"
	awsinfra "github.com/hiro2620/sphero-controll/internal/infrastructure/aws"
	"github.com/hiro2620/sphero-controll/internal/infrastructure/bluetooth"
	"github.com/hiro2620/sphero-controll/internal/infrastructure/host"
	"github.com/hiro2620/sphero-controll/internal/infrastructure/pip"
	"github.com/hiro2620/sphero-controll/internal/infrastructure/raspiconfig"
	"github.com/hiro2620/sphero-controll/internal/infrastructure/systemd"
)

// Container holds the wired command and query handlers
type Container struct {
	Config *config.ProvisionConfig

	ProvisionHandler *commands.ProvisionCommandHandler
	VerifyHandler    *commands.VerifyCommandHandler
	StatusHandler    *queries.StatusQueryHandler
}

// NewContainer wires the real host adapters behind the application
// ports
func NewContainer(ctx context.Context, cfg *config.ProvisionConfig) (*Container, error) {
	runner := executor.NewExecRunner("")

	packages := apt.NewInstaller(runner)
	python := pip.NewInstaller(runner)
	interfaces := raspiconfig.NewConfigurer(runner)
	inspector := bluetooth.NewInspector(runner)
	units := systemd.NewManager(runner, cfg.Service.UnitDir)
	controller := host.NewController(runner)

	source, err := newArtifactSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	publishers, err := newReportPublishers(ctx, cfg)
	if err != nil {
		return nil, err
	}

	provisionHandler := commands.NewProvisionCommandHandler(
		cfg,
		packages,
		python,
		interfaces,
		inspector,
		units,
		source,
		controller,
		publishers,
	)

	return &Container{
		Config:           cfg,
		ProvisionHandler: provisionHandler,
		VerifyHandler:    commands.NewVerifyCommandHandler(cfg, inspector, executor.LookPath),
		StatusHandler:    queries.NewStatusQueryHandler(provisionHandler),
	}, nil
}

// newArtifactSource picks the S3 source for s3:// URLs and the local
// directory source otherwise
func newArtifactSource(ctx context.Context, cfg *config.ProvisionConfig) (ports.ArtifactSource, error) {
	bucket, prefix, ok := artifact.ParseS3URL(cfg.Artifacts.Source)
	if !ok {
		return artifact.NewLocalSource(cfg.Artifacts.Source, cfg.Artifacts.Files), nil
	}

	awsCfg, err := awsinfra.NewConfig(ctx, awsOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	usePathStyle := cfg.AWS != nil && cfg.AWS.Endpoint != ""
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// Path style is required for LocalStack-style endpoints
		o.UsePathStyle = usePathStyle
	})

	return artifact.NewS3Source(
		client, bucket, prefix,
		cfg.Artifacts.Files,
		cfg.Artifacts.Requirements, cfg.Service.UnitTemplate,
	), nil
}

// newReportPublishers builds the configured fleet report sinks
func newReportPublishers(ctx context.Context, cfg *config.ProvisionConfig) ([]ports.ReportPublisher, error) {
	if cfg.Report == nil {
		return nil, nil
	}

	awsCfg, err := awsinfra.NewConfig(ctx, awsOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	var publishers []ports.ReportPublisher
	if cfg.Report.SNSTopicARN != "" {
		publishers = append(publishers, awsinfra.NewSNSReporter(awsCfg, cfg.Report.SNSTopicARN))
	}
	if cfg.Report.SQSQueueURL != "" {
		publishers = append(publishers, awsinfra.NewSQSReporter(awsCfg, cfg.Report.SQSQueueURL))
	}
	return publishers, nil
}

func awsOptions(cfg *config.ProvisionConfig) awsinfra.Options {
	if cfg.AWS == nil {
		return awsinfra.Options{}
	}
	return awsinfra.Options{
		Region:          cfg.AWS.Region,
		Endpoint:        cfg.AWS.Endpoint,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
	}
}
