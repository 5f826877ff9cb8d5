package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// ConsumeQueue imports records batches published to queue on the broker at
// url until ctx is cancelled.
func (importer *Importer) ConsumeQueue(ctx context.Context, url string, queue string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return fmt.Errorf("connect rabbitmq: %w", err)
	}
	defer conn.Close()

	channel, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel: %w", err)
	}
	defer channel.Close()

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}
	if err := channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set queue prefetch: %w", err)
	}
	deliveries, err := channel.Consume(queue, "medmind-importer", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume queue %s: %w", queue, err)
	}

	importer.logger.WithField("queue", queue).Info("consuming records queue")
	return importer.consumeDeliveries(ctx, deliveries)
}

func (importer *Importer) consumeDeliveries(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("records queue closed")
			}
			importer.handleDelivery(delivery)
		}
	}
}

// Invalid batches are rejected without requeueing since redelivery cannot
// fix them. Writer failures are requeued; upserts make a partial write safe
// to replay.
func (importer *Importer) handleDelivery(delivery amqp.Delivery) {
	logger := importer.logger.WithFields(logrus.Fields{
		"delivery_tag":   delivery.DeliveryTag,
		"correlation_id": delivery.CorrelationId,
	})

	_, err := importer.ImportJSON(bytes.NewReader(delivery.Body))
	switch {
	case err == nil:
		if ackErr := delivery.Ack(false); ackErr != nil {
			logger.WithError(ackErr).Error("ack records message failed")
		}
	case errors.Is(err, ErrBatchInvalid):
		logger.WithError(err).Warn("records message rejected")
		if rejectErr := delivery.Reject(false); rejectErr != nil {
			logger.WithError(rejectErr).Error("reject records message failed")
		}
	default:
		logger.WithError(err).Error("records message import failed, requeueing")
		if nackErr := delivery.Nack(false, true); nackErr != nil {
			logger.WithError(nackErr).Error("requeue records message failed")
		}
	}
}
