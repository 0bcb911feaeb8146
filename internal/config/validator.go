package config

import (
	"fmt"
	"strings"
)

// Validate checks a provision manifest for fields that would make the
// run fail in confusing ways later
func Validate(cfg *ProvisionConfig) error {
	if cfg.Version == "" {
		return fmt.Errorf("version is required")
	}

	if cfg.Service.Name == "" {
		return fmt.Errorf("service.name is required")
	}
	if strings.ContainsAny(cfg.Service.Name, "/ ") {
		return fmt.Errorf("service.name must not contain slashes or spaces")
	}

	if len(cfg.Artifacts.Files) == 0 {
		return fmt.Errorf("artifacts.files must list at least one file")
	}
	for _, f := range cfg.Artifacts.Files {
		if strings.HasPrefix(f, "/") {
			return fmt.Errorf("artifacts.files entries must be relative to the source: %s", f)
		}
	}

	if len(cfg.Packages.Apt) == 0 {
		return fmt.Errorf("packages.apt must list at least one package")
	}

	if cfg.Reboot.DelaySeconds < 0 {
		return fmt.Errorf("reboot.delay_seconds must not be negative")
	}

	if cfg.Report != nil {
		if cfg.Report.SNSTopicARN == "" && cfg.Report.SQSQueueURL == "" {
			return fmt.Errorf("report requires sns_topic_arn or sqs_queue_url")
		}
	}

	return nil
}
