package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coffeeshop/ordering-api/internal/api/metrics"
	"github.com/coffeeshop/ordering-api/internal/core/domain"
)

const (
	minResumeBackoff = 500 * time.Millisecond
	maxResumeBackoff = 30 * time.Second
)

// OrderEnqueuer accepts newly inserted orders for asynchronous handling.
type OrderEnqueuer interface {
	Enqueue(ctx context.Context, order *domain.Order) error
}

// changeCursor is the subset of *mongo.ChangeStream the watcher consumes.
type changeCursor interface {
	Next(ctx context.Context) bool
	Decode(val interface{}) error
	ResumeToken() bson.Raw
	Err() error
	Close(ctx context.Context) error
}

type openFunc func(ctx context.Context, resumeAfter bson.Raw) (changeCursor, error)

type orderChangeEvent struct {
	OperationType string        `bson:"operationType"`
	FullDocument  *domain.Order `bson:"fullDocument"`
}

// OrderWatcher tails the orders collection for inserts and forwards each new
// order to an OrderEnqueuer.
type OrderWatcher struct {
	open  openFunc
	queue OrderEnqueuer
	log   zerolog.Logger
	sleep func(ctx context.Context, d time.Duration) bool
}

func NewOrderWatcher(db *mongo.Database, queue OrderEnqueuer, log zerolog.Logger) *OrderWatcher {
	coll := db.Collection(collectionOrders)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "operationType", Value: "insert"}}}},
	}

	open := func(ctx context.Context, resumeAfter bson.Raw) (changeCursor, error) {
		opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
		if resumeAfter != nil {
			opts.SetResumeAfter(resumeAfter)
		}
		cs, err := coll.Watch(ctx, pipeline, opts)
		if err != nil {
			return nil, fmt.Errorf("watch orders: %w", err)
		}
		return cs, nil
	}
	return newOrderWatcher(open, queue, log)
}

func newOrderWatcher(open openFunc, queue OrderEnqueuer, log zerolog.Logger) *OrderWatcher {
	return &OrderWatcher{open: open, queue: queue, log: log, sleep: sleepCtx}
}

// Run blocks until ctx is cancelled. If the very first open fails (for
// example on a standalone server without change streams) the watcher logs an
// error and returns nil so the rest of the process keeps running. Once a
// stream has been established, failures are retried from the last resume
// token with exponential back-off.
func (w *OrderWatcher) Run(ctx context.Context) error {
	var token bson.Raw
	established := false
	backoff := minResumeBackoff

	for {
		stream, err := w.open(ctx, token)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if !established {
				w.log.Error().Err(err).Msg("change stream unavailable, order watcher disabled")
				return nil
			}
			// The token may have fallen off the oplog; start fresh next time.
			w.log.Warn().Err(err).Dur("backoff", backoff).Msg("change stream reopen failed")
			token = nil
			if !w.sleep(ctx, backoff) {
				return nil
			}
			backoff = nextBackoff(backoff)
			continue
		}

		if !established {
			w.log.Info().Msg("watching orders for inserts")
		}
		established = true
		backoff = minResumeBackoff

		last, err := w.consume(ctx, stream)
		_ = stream.Close(context.Background())
		if last != nil {
			token = last
		}
		if ctx.Err() != nil {
			return nil
		}

		metrics.ChangeStreamRestartsTotal.Inc()
		w.log.Warn().Err(err).Dur("backoff", backoff).Msg("change stream interrupted, resuming")
		if !w.sleep(ctx, backoff) {
			return nil
		}
		backoff = nextBackoff(backoff)
	}
}

// consume reads until the cursor stops and returns the last resume token seen.
func (w *OrderWatcher) consume(ctx context.Context, stream changeCursor) (bson.Raw, error) {
	var token bson.Raw
	for stream.Next(ctx) {
		token = stream.ResumeToken()

		var ev orderChangeEvent
		if err := stream.Decode(&ev); err != nil {
			w.log.Error().Err(err).Msg("decode change event")
			continue
		}
		if ev.FullDocument == nil || ev.FullDocument.ID == "" {
			continue
		}

		metrics.ChangeStreamEventsTotal.Inc()
		w.log.Debug().Str("order_id", ev.FullDocument.ID).Msg("order insert observed")
		if err := w.queue.Enqueue(ctx, ev.FullDocument); err != nil {
			return token, fmt.Errorf("enqueue order %s: %w", ev.FullDocument.ID, err)
		}
	}
	return token, stream.Err()
}

func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxResumeBackoff {
		return maxResumeBackoff
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
