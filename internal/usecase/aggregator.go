package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"travelledger-service/internal/domain/entity"
	"travelledger-service/internal/domain/registry"
	"travelledger-service/internal/domain/repository"
	"travelledger-service/pkg/logger"
	"travelledger-service/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

// Aggregator owns the published snapshot/summary pair. Refresh is the only
// writer; it replaces both wholesale in one atomic publish, so readers never
// see a half-updated snapshot. There is no merging with prior state: a failed
// refresh leaves the last published pair untouched.
type Aggregator struct {
	store   repository.DocumentStore
	logger  logger.Logger
	metrics *metrics.Metrics

	mu       sync.RWMutex
	snapshot *entity.Snapshot
	summary  *entity.Summary
}

// NewAggregator creates a new aggregation engine. metrics may be nil.
func NewAggregator(store repository.DocumentStore, log logger.Logger, m *metrics.Metrics) *Aggregator {
	return &Aggregator{
		store:   store,
		logger:  log,
		metrics: m,
	}
}

// Refresh fetches all eight collections concurrently, assembles a fresh
// snapshot and its summary, and publishes both atomically. If any single
// fetch fails the whole refresh fails and nothing is published; the error
// names the category that failed. Overlapping calls are allowed; the last
// one to complete wins the publish.
func (a *Aggregator) Refresh(ctx context.Context) error {
	start := time.Now()
	snap := &entity.Snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(a.fetch(gctx, entity.CategoryFlight, &snap.Flights))
	g.Go(a.fetch(gctx, entity.CategoryHotel, &snap.Hotels))
	g.Go(a.fetch(gctx, entity.CategoryCar, &snap.Cars))
	g.Go(a.fetch(gctx, entity.CategoryVisa, &snap.Visas))
	g.Go(a.fetch(gctx, entity.CategoryForeignExchange, &snap.ForeignExchanges))
	g.Go(a.fetch(gctx, entity.CategoryTourPackage, &snap.TourPackages))
	g.Go(a.fetch(gctx, entity.CategoryTrain, &snap.Trains))
	g.Go(a.fetch(gctx, entity.CategoryVajabhat, &snap.Vajabhats))

	if err := g.Wait(); err != nil {
		a.logger.Error("Refresh failed, keeping previous snapshot", "error", err)
		return fmt.Errorf("refresh: %w", err)
	}

	snap.FetchedAt = time.Now()
	summary := Summarize(snap)

	a.mu.Lock()
	a.snapshot = snap
	a.summary = summary
	a.mu.Unlock()

	if a.metrics != nil {
		a.metrics.RefreshTotal.Inc()
		a.metrics.RefreshDuration.Observe(time.Since(start).Seconds())
		a.metrics.CoercedAmounts.Add(float64(summary.CoercedAmounts))
		for _, tag := range entity.Categories() {
			a.metrics.RecordsFetched.WithLabelValues(string(tag)).Set(float64(snap.Count(tag)))
		}
	}

	a.logger.Info("Snapshot refreshed",
		"totalServices", summary.TotalServices,
		"totalProfit", summary.TotalProfit,
		"coercedAmounts", summary.CoercedAmounts,
		"took", time.Since(start))
	return nil
}

func (a *Aggregator) fetch(ctx context.Context, tag entity.CategoryTag, out interface{}) func() error {
	return func() error {
		if err := a.store.GetAll(ctx, registry.CollectionOf(tag), out); err != nil {
			if a.metrics != nil {
				a.metrics.RefreshFailures.WithLabelValues(string(tag)).Inc()
			}
			return fmt.Errorf("fetch %s: %w", tag, err)
		}
		return nil
	}
}

// CurrentSnapshot returns the last published snapshot, or nil before the
// first successful refresh.
func (a *Aggregator) CurrentSnapshot() *entity.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot
}

// CurrentSummary returns the summary computed from the snapshot returned by
// CurrentSnapshot; the two always belong to the same refresh.
func (a *Aggregator) CurrentSummary() *entity.Summary {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.summary
}
