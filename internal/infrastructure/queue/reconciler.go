package queue

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

const (
	defaultWorkers  = 4
	defaultInterval = time.Minute
	channelBuffer   = 64
	sweepBatch      = 100
)

// CartReleaser deletes the cart entries of a settled payment.
type CartReleaser interface {
	ReleaseCarts(ctx context.Context, p *domain.Payment) (int64, error)
}

// Reconciler periodically finds settled payments whose cart cleanup failed and
// retries it. Payments are routed to a fixed set of workers by hashing the
// transaction id, so one payment is never released by two workers at once.
type Reconciler struct {
	workers  []chan *domain.Payment
	payments ports.PaymentRepository
	releaser CartReleaser
	interval time.Duration
	observe  func(deleted int64, err error)
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewReconciler creates a Reconciler with numWorkers sharded workers sweeping
// every interval. Non-positive values fall back to the defaults.
func NewReconciler(numWorkers int, interval time.Duration, payments ports.PaymentRepository, releaser CartReleaser, log zerolog.Logger) *Reconciler {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	r := &Reconciler{
		workers:  make([]chan *domain.Payment, numWorkers),
		payments: payments,
		releaser: releaser,
		interval: interval,
		observe:  func(int64, error) {},
		log:      log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan *domain.Payment, channelBuffer)
	}
	return r
}

// OnResult registers a callback invoked after every release attempt.
func (r *Reconciler) OnResult(fn func(deleted int64, err error)) *Reconciler {
	if fn != nil {
		r.observe = fn
	}
	return r
}

// Start launches the workers and the sweep loop. Everything stops when ctx is
// cancelled; Wait blocks until it has.
func (r *Reconciler) Start(ctx context.Context) {
	for i, ch := range r.workers {
		r.wg.Add(1)
		go r.runWorker(ctx, i, ch)
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := r.Sweep(ctx); err != nil {
					r.log.Error().Err(err).Msg("reconcile sweep failed")
				}
			}
		}
	}()
}

// Wait blocks until every goroutine started by Start has returned.
func (r *Reconciler) Wait() {
	r.wg.Wait()
}

// Sweep loads one batch of uncleared payments and queues them. It returns how
// many were queued; payments whose worker queue is full wait for the next sweep.
func (r *Reconciler) Sweep(ctx context.Context) (int, error) {
	pending, err := r.payments.ListUncleared(ctx, sweepBatch)
	if err != nil {
		return 0, err
	}

	queued := 0
	for _, p := range pending {
		if r.Enqueue(p) {
			queued++
		}
	}
	if queued > 0 {
		r.log.Info().Int("queued", queued).Int("found", len(pending)).Msg("reconcile sweep")
	}
	return queued, nil
}

// Enqueue hands p to the worker responsible for its transaction id without
// blocking. It reports false when that worker's queue is full.
func (r *Reconciler) Enqueue(p *domain.Payment) bool {
	select {
	case r.workers[r.shardIndex(shardKey(p))] <- p:
		return true
	default:
		return false
	}
}

func shardKey(p *domain.Payment) string {
	if p.TransactionID != "" {
		return p.TransactionID
	}
	return p.ID
}

// shardIndex maps a key deterministically to a worker index.
func (r *Reconciler) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(r.workers)))
}

func (r *Reconciler) runWorker(ctx context.Context, id int, ch <-chan *domain.Payment) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case p := <-ch:
			deleted, err := r.releaser.ReleaseCarts(ctx, p)
			r.observe(deleted, err)
			if err != nil {
				r.log.Error().Err(err).
					Str("tran_id", p.TransactionID).
					Int("worker_id", id).
					Msg("cart release retry failed")
				continue
			}
			r.log.Info().
				Str("tran_id", p.TransactionID).
				Int64("carts_deleted", deleted).
				Msg("carts released by reconciler")
		}
	}
}
