// Package reconciler runs periodic maintenance that keeps stored state
// consistent with the clock: closing markets past their end date and
// purging expired sign-in nonces.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/internal/metrics"
)

const runTimeout = 2 * time.Minute

// MarketStore closes markets whose end date has passed.
type MarketStore interface {
	CloseExpiredMarkets(ctx context.Context, now time.Time) (int64, error)
}

// NonceStore deletes expired sign-in nonces.
type NonceStore interface {
	DeleteExpiredNonces(ctx context.Context, before time.Time) (int64, error)
}

// Reconciler handles periodic maintenance of market and nonce state
type Reconciler struct {
	markets        MarketStore
	nonces         NonceStore
	nonceRetention time.Duration
	now            func() time.Time
	logger         *zap.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new Reconciler
func New(markets MarketStore, nonces NonceStore, nonceRetention time.Duration, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		markets:        markets,
		nonces:         nonces,
		nonceRetention: nonceRetention,
		now:            time.Now,
		logger:         logger,
		stopCh:         make(chan struct{}),
	}
}

// ReconcileAll closes expired markets and purges old nonces. Both steps run
// even if one fails; the returned error joins their failures.
func (r *Reconciler) ReconcileAll(ctx context.Context) error {
	start := time.Now()
	now := r.now().UTC()

	var errs []error

	closed, err := r.markets.CloseExpiredMarkets(ctx, now)
	if err != nil {
		errs = append(errs, fmt.Errorf("close expired markets: %w", err))
	} else {
		metrics.MarketsClosed.Add(float64(closed))
	}

	purged, err := r.nonces.DeleteExpiredNonces(ctx, now.Add(-r.nonceRetention))
	if err != nil {
		errs = append(errs, fmt.Errorf("purge expired nonces: %w", err))
	} else {
		metrics.NoncesPurged.Add(float64(purged))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	if closed > 0 || purged > 0 {
		r.logger.Info("Reconciliation completed",
			zap.Int64("markets_closed", closed),
			zap.Int64("nonces_purged", purged),
			zap.Duration("duration", time.Since(start)))
	}
	return nil
}

// StartPeriodicReconciliation starts a background goroutine that reconciles periodically
func (r *Reconciler) StartPeriodicReconciliation(interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		r.logger.Info("Started periodic reconciliation", zap.Duration("interval", interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
				if err := r.ReconcileAll(ctx); err != nil {
					r.logger.Error("Periodic reconciliation failed", zap.Error(err))
				}
				cancel()
			case <-r.stopCh:
				r.logger.Info("Stopping periodic reconciliation")
				return
			}
		}
	}()
}

// Stop stops the periodic reconciliation. It is safe to call more than once.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}
