package publisher

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/amirhxil/partner-transaction-api/internal/dto"
	"github.com/rs/zerolog/log"
)

var (
	ErrQueueFull       = errors.New("settlement queue is full")
	ErrPublisherClosed = errors.New("settlement publisher is closed")
)

const (
	DefaultQueueSize      = 1024
	DefaultWorkers        = 4
	DefaultPublishTimeout = 10 * time.Second
)

type job struct {
	ctx   context.Context
	event dto.SettlementEvent
}

// AsyncPublisher queues events for a fixed pool of workers so callers never
// wait on the broker. Each publish runs on a context detached from the
// caller's cancellation and bounded by its own timeout.
type AsyncPublisher struct {
	next    SettlementPublisher
	jobs    chan job
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func CreateAsyncPublisher(next SettlementPublisher, queueSize, workers int, timeout time.Duration) *AsyncPublisher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}

	p := &AsyncPublisher{
		next:    next,
		jobs:    make(chan job, queueSize),
		timeout: timeout,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work()
	}

	return p
}

// PublishAccepted enqueues the event and returns immediately. A full queue
// drops the event.
func (p *AsyncPublisher) PublishAccepted(ctx context.Context, event dto.SettlementEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.jobs <- job{ctx: context.WithoutCancel(ctx), event: event}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events and waits for queued ones to be published.
func (p *AsyncPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()

	return nil
}

func (p *AsyncPublisher) work() {
	defer p.wg.Done()

	for j := range p.jobs {
		ctx, cancel := context.WithTimeout(j.ctx, p.timeout)
		if err := p.next.PublishAccepted(ctx, j.event); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "AsyncPublisher").Str("partner_ref_no", j.event.PartnerRefNo).Msg("")
		}
		cancel()
	}
}
