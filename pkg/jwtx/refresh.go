package jwtx

import (
	"context"
	"log/slog"
	"time"
)

// KeyRefresher periodically reloads a KeySet from its source so rotated
// issuer keys are picked up without a restart. A failed reload keeps the
// previous keys.
type KeyRefresher struct {
	Keys     *KeySet
	Source   JWKSSource
	Interval time.Duration
	Logger   *slog.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewKeyRefresher creates a refresher. If interval is 0 or negative,
// defaults to 15 minutes.
func NewKeyRefresher(keys *KeySet, source JWKSSource, interval time.Duration, logger *slog.Logger) *KeyRefresher {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &KeyRefresher{
		Keys:     keys,
		Source:   source,
		Interval: interval,
		Logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Refresh loads the source once and swaps the keys in.
func (r *KeyRefresher) Refresh(ctx context.Context) error {
	set, err := r.Source.Load(ctx)
	if err != nil {
		return err
	}
	if err := r.Keys.ResetFromJWKS(set); err != nil {
		return err
	}
	r.Logger.Debug("jwks refreshed", "keys", len(set.Keys))
	return nil
}

// Start begins the background refresh loop. Call Stop to shut it down.
func (r *KeyRefresher) Start() {
	go r.run()
}

// Stop blocks until an in-progress refresh has finished.
func (r *KeyRefresher) Stop() {
	close(r.stopCh)
	<-r.doneCh
}

func (r *KeyRefresher) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.Interval/2)
			if err := r.Refresh(ctx); err != nil {
				r.Logger.Warn("jwks refresh failed, keeping previous keys", "error", err)
			}
			cancel()
		case <-r.stopCh:
			return
		}
	}
}
