package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/coffeeshop/ordering-api/internal/api/metrics"
	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes orders observed on the change stream to a fixed set of
// workers using consistent hashing on the order id, so all notifications for
// one order are handled by the same worker.
type Dispatcher struct {
	workers []chan *domain.Order
	sink    ports.OrderEventSink
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.OrderEventSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan *domain.Order, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.Order, channelBuffer)
	}
	return d
}

// Run starts the workers and blocks until ctx is cancelled and every worker
// has returned.
func (d *Dispatcher) Run(ctx context.Context) error {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
	d.wg.Wait()
	return nil
}

// Enqueue hands order to the worker responsible for its id. It blocks while
// that worker's buffer is full, until ctx is done.
func (d *Dispatcher) Enqueue(ctx context.Context, order *domain.Order) error {
	idx := d.shardIndex(order.ID)
	select {
	case d.workers[idx] <- order:
		metrics.DispatchQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps an order id deterministically to a worker index.
func (d *Dispatcher) shardIndex(orderID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(orderID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.Order) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			return
		case order := <-ch:
			metrics.DispatchQueueDepth.WithLabelValues(label).Set(float64(len(ch)))

			start := time.Now()
			if err := d.sink.OrderCreated(ctx, order, domain.SourceChangeStream); err != nil {
				d.log.Error().Err(err).
					Str("order_id", order.ID).
					Int("worker_id", id).
					Msg("newOrder dispatch failed")
			}
			metrics.DispatchDuration.Observe(time.Since(start).Seconds())
		}
	}
}
