// Package redis mirrors the customer-facing queue board into Redis: the
// "now serving" number and the active queue are kept under fixed keys and
// every order change is announced on a pub/sub channel for displays.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"catering/internal/core/domain/services"
	"catering/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	ServingKey     = "catering:board:serving"
	QueueKey       = "catering:board:queue"
	ChangesChannel = "catering:orders"
)

var _ ports.OrderEventPublisher = (*QueueBoard)(nil)

// BoardEntry is one line of the queue board. It carries no bill or
// customer data.
type BoardEntry struct {
	OrderNumber   string `json:"orderNumber"`
	Status        string `json:"status"`
	QueuePosition int    `json:"queuePosition"`
}

// QueueBoard refreshes the board from a fresh snapshot on every event, so a
// lost event is repaired by the next one.
type QueueBoard struct {
	client *redis.Client
	reader ports.StateReader
	queue  services.OrderQueue
	logger *slog.Logger
}

func NewQueueBoard(client *redis.Client, reader ports.StateReader, logger *slog.Logger) *QueueBoard {
	return &QueueBoard{
		client: client,
		reader: reader,
		queue:  services.NewOrderQueue(),
		logger: logger.With("component", "redis_queue_board"),
	}
}

func (b *QueueBoard) Publish(ctx context.Context, event ports.OrderChangedEvent) {
	if err := b.Refresh(ctx); err != nil {
		b.logger.ErrorContext(ctx, "Failed to refresh queue board", "order", event.OrderNumber, "error", err)
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to encode order event", "order", event.OrderNumber, "error", err)
		return
	}
	if err = b.client.Publish(ctx, ChangesChannel, payload).Err(); err != nil {
		b.logger.ErrorContext(ctx, "Failed to announce order change", "order", event.OrderNumber, "error", err)
	}
}

// Refresh rewrites both board keys in one MULTI/EXEC.
func (b *QueueBoard) Refresh(ctx context.Context) error {
	snapshot, err := b.reader.Snapshot(ctx)
	if err != nil {
		return err
	}

	active := b.queue.Active(snapshot.Orders)
	entries := make([]BoardEntry, 0, len(active))
	for _, o := range active {
		entries = append(entries, BoardEntry{
			OrderNumber:   o.Number().String(),
			Status:        o.Status().String(),
			QueuePosition: o.QueuePosition(),
		})
	}

	board, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	serving := b.queue.CurrentServing(snapshot.Orders)

	_, err = b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, ServingKey, serving, 0)
		pipe.Set(ctx, QueueKey, board, 0)
		return nil
	})
	return err
}

// Serving reads the "now serving" number back from Redis.
func (b *QueueBoard) Serving(ctx context.Context) (int, error) {
	raw, err := b.client.Get(ctx, ServingKey).Result()
	if err != nil {
		return 0, err
	}
	serving, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("serving key holds %q: %w", raw, err)
	}
	return serving, nil
}

// Entries reads the active queue back from Redis.
func (b *QueueBoard) Entries(ctx context.Context) ([]BoardEntry, error) {
	raw, err := b.client.Get(ctx, QueueKey).Bytes()
	if err != nil {
		return nil, err
	}
	var entries []BoardEntry
	if err = json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
