package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"gopkg.in/yaml.v3"

	"github.com/hiro2620/sphero-controll/internal/application/ports"
)

// SNSReporter publishes provision reports to an SNS topic consumed
// by fleet monitoring
type SNSReporter struct {
	client   *sns.Client
	topicARN string
}

// NewSNSReporter creates a reporter for the given topic
func NewSNSReporter(cfg aws.Config, topicARN string) ports.ReportPublisher {
	return &SNSReporter{
		client:   sns.NewFromConfig(cfg),
		topicARN: topicARN,
	}
}

// Publish sends the yaml-encoded report to the topic
func (r *SNSReporter) Publish(ctx context.Context, report ports.Report) error {
	body, err := encodeReport(report)
	if err != nil {
		return err
	}

	_, err = r.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(r.topicARN),
		Message:  aws.String(body),
	})
	if err != nil {
		return fmt.Errorf("failed to publish report to %s: %w", r.topicARN, err)
	}
	return nil
}

// Describe names the sink for log output
func (r *SNSReporter) Describe() string {
	return r.topicARN
}

// SQSReporter delivers provision reports to an SQS queue consumed by
// a fleet inventory worker
type SQSReporter struct {
	client   *sqs.Client
	queueURL string
}

// NewSQSReporter creates a reporter for the given queue
func NewSQSReporter(cfg aws.Config, queueURL string) ports.ReportPublisher {
	return &SQSReporter{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}
}

// Publish sends the yaml-encoded report to the queue
func (r *SQSReporter) Publish(ctx context.Context, report ports.Report) error {
	body, err := encodeReport(report)
	if err != nil {
		return err
	}

	_, err = r.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(r.queueURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return fmt.Errorf("failed to send report to %s: %w", r.queueURL, err)
	}
	return nil
}

// Describe names the sink for log output
func (r *SQSReporter) Describe() string {
	return r.queueURL
}

func encodeReport(report ports.Report) (string, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(data), nil
}
