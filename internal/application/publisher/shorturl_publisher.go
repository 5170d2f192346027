package publisher

import (
	"context"
	"time"

	"go-shortener/internal/domain/gateway/queue"
	"go-shortener/internal/domain/model"
	"go-shortener/pkg/log"
	"go-shortener/pkg/msg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ShortUrlPublisher announces created short URLs on a queue. A nil sender disables it.
type ShortUrlPublisher struct {
	sender    queue.Sender
	queueName string
	now       func() time.Time
}

func NewShortUrlPublisher(sender queue.Sender, queueName string) *ShortUrlPublisher {
	return &ShortUrlPublisher{sender: sender, queueName: queueName, now: time.Now}
}

// Publish sends a ShortUrlCreatedEvent. Failures are logged and returned; they never undo the creation.
func (p *ShortUrlPublisher) Publish(ctx context.Context, longUrl string, result model.ShortUrlResult, qrCodeUrl string) error {
	if p == nil || p.sender == nil {
		return nil
	}

	event := model.ShortUrlCreatedEvent{
		ID:        uuid.NewString(),
		LongUrl:   longUrl,
		ShortUrl:  result.ShortUrl,
		ShortCode: result.ShortCode,
		QrCodeUrl: qrCodeUrl,
		CreatedAt: p.now().UTC(),
	}

	if err := p.sender.SendMessage(ctx, p.queueName, event); err != nil {
		log.Error(msg.GetMessage("short-url.event.publish-failure", p.queueName, err), zap.String("event_id", event.ID))
		return err
	}

	log.Info(msg.GetMessage("short-url.event.published", p.queueName), zap.String("event_id", event.ID))
	return nil
}
