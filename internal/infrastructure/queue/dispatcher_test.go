package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
)

type recordingSink struct {
	mu      sync.Mutex
	ids     []string
	sources []domain.EventSource
}

func (s *recordingSink) OrderCreated(_ context.Context, o *domain.Order, source domain.EventSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, o.ID)
	s.sources = append(s.sources, source)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func TestDispatcher_DeliversWithChangeStreamSource(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(3, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = d.Run(ctx)
		close(done)
	}()

	for i := 0; i < 20; i++ {
		require.NoError(t, d.Enqueue(ctx, &domain.Order{ID: fmt.Sprintf("order-%d", i)}))
	}

	require.Eventually(t, func() bool { return sink.count() == 20 }, 2*time.Second, 10*time.Millisecond)
	cancel()
	<-done

	for _, src := range sink.sources {
		assert.Equal(t, domain.SourceChangeStream, src)
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, &recordingSink{}, zerolog.Nop())

	first := d.shardIndex("665f1c2e9b1d4a0012345678")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, d.shardIndex("665f1c2e9b1d4a0012345678"))
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, 8)
}

func TestDispatcher_DefaultWorkers(t *testing.T) {
	d := NewDispatcher(0, &recordingSink{}, zerolog.Nop())
	assert.Len(t, d.workers, defaultWorkers)
}

func TestDispatcher_EnqueueRespectsContext(t *testing.T) {
	d := NewDispatcher(1, &recordingSink{}, zerolog.Nop())
	ctx := context.Background()
	for i := 0; i < channelBuffer; i++ {
		require.NoError(t, d.Enqueue(ctx, &domain.Order{ID: "same"}))
	}

	full, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Enqueue(full, &domain.Order{ID: "same"}), context.DeadlineExceeded)
}
