package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// ReminderMessage is the payload published for each user with overdue reviews.
type ReminderMessage struct {
	UserID    uuid.UUID `json:"userId"`
	DueCount  int       `json:"dueCount"`
	OldestDue time.Time `json:"oldestDue"`
}

// ReminderPublisher publishes overdue-review reminders to a pub/sub channel.
// Delivery to devices is done by the subscriber.
type ReminderPublisher struct {
	rdb     goredis.Cmdable
	channel string
}

// NewReminderPublisher creates a publisher for channel.
func NewReminderPublisher(rdb goredis.Cmdable, channel string) *ReminderPublisher {
	return &ReminderPublisher{rdb: rdb, channel: channel}
}

// Notify publishes one reminder.
func (p *ReminderPublisher) Notify(ctx context.Context, s domain.OverdueSummary) error {
	raw, err := json.Marshal(ReminderMessage{
		UserID:    s.UserID,
		DueCount:  s.DueCount,
		OldestDue: s.OldestDue.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal reminder: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.channel, raw).Err(); err != nil {
		return fmt.Errorf("publish reminder: %w", err)
	}
	return nil
}
