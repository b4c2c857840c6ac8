// Package broadcast fans order events out to several publishers.
package broadcast

import (
	"context"

	"catering/internal/core/ports"
)

var _ ports.OrderEventPublisher = Publisher(nil)

// Publisher hands every event to each of its members in turn. Nil members
// are skipped so optional sinks can be left unset.
type Publisher []ports.OrderEventPublisher

func New(publishers ...ports.OrderEventPublisher) Publisher {
	out := make(Publisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (p Publisher) Publish(ctx context.Context, event ports.OrderChangedEvent) {
	for _, member := range p {
		member.Publish(ctx, event)
	}
}
