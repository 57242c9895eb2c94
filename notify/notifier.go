// Package notify is the dashboard's outcome side channel: whichever
// component triggers a write, the result is reported through a Notifier
// injected into the service rather than through shared mutable state.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"
)

// Event describes the outcome of one user-triggered action.
type Event struct {
	Entity  string `json:"entity"`
	Action  string `json:"action"`
	ID      string `json:"id,omitempty"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Notifier dispatches action outcomes. Implementations must not block
// the action itself: a failed dispatch is logged and dropped.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// SNSNotifier publishes events to an admin events topic.
type SNSNotifier struct {
	client   *sns.Client
	topicARN string
}

func NewSNSNotifier(client *sns.Client, topicARN string) *SNSNotifier {
	return &SNSNotifier{client: client, topicARN: topicARN}
}

func (n *SNSNotifier) Notify(ctx context.Context, event Event) {
	msgBytes, err := json.Marshal(event)
	if err != nil {
		zap.L().Warn("Failed to marshal notification event", zap.Error(err))
		return
	}

	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Message:  aws.String(string(msgBytes)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"entity": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Entity),
			},
			"action": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Action),
			},
		},
	})
	if err != nil {
		zap.L().Warn("Failed to publish notification event",
			zap.String("entity", event.Entity),
			zap.String("action", event.Action),
			zap.Error(err),
		)
	}
}

// LogNotifier writes events to the service log. Used for local runs and
// as the fallback when no topic is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, event Event) {
	zap.L().Info(fmt.Sprintf("%s %s", event.Entity, event.Action),
		zap.String("id", event.ID),
		zap.Bool("success", event.Success),
		zap.String("message", event.Message),
	)
}
