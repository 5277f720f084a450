package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"bookstore/config"
	"bookstore/internal/domain/lifecycle"
	"bookstore/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes account events to a Google Cloud Pub/Sub topic.
// Messages are keyed by account so consumers see one account's events in order.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

func topicName(projectID, topicID string) string {
	return "projects/" + projectID + "/topics/" + topicID
}

// NewGooglePubSubPublisher connects to the configured project and fails fast when the topic is missing.
func NewGooglePubSubPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := topicName(cfg.ProjectID, cfg.TopicID)
	lookupCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := client.TopicAdminClient.GetTopic(lookupCtx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not available", topic)
	}

	publisher := client.Publisher(cfg.TopicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishAccountEvent waits for the server ack, bounded by lifecycle.DefaultTimeout.
func (p *googlePubSubPublisher) PublishAccountEvent(ctx context.Context, event *service.AccountEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode account event")
	}

	publishCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	result := p.publisher.Publish(publishCtx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.AccountID,
	})

	serverID, err := result.Get(publishCtx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		p.publisher.ResumePublish(event.AccountID)

		return errors.Wrapf(err, "failed to publish %s to %s", event.Type, p.topic)
	}

	p.logger.DebugContext(ctx, "[GooglePubSub] Account event published",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
