package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"te-backend/weather-service/internal/providers"
)

// VendorResult is one vendor's outcome from a fan-out cycle. A vendor that
// failed carries its error and an empty day series.
type VendorResult struct {
	Tag  string
	Days []providers.CanonicalDay
	Err  error
}

// FetchOrchestrator runs every enabled vendor client concurrently and
// collects their results into a tag-indexed map, so nothing downstream
// depends on completion order.
type FetchOrchestrator interface {
	FetchAll(ctx context.Context, latitude, longitude float64) map[string]VendorResult
	VendorOrder() []string
}

type fetchOrchestrator struct {
	vendors    []providers.Vendor
	maxWorkers int
}

func NewFetchOrchestrator(vendors []providers.Vendor, maxWorkers int) FetchOrchestrator {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &fetchOrchestrator{
		vendors:    vendors,
		maxWorkers: maxWorkers,
	}
}

// FetchAll blocks until every vendor task has finished; one vendor failing
// never suppresses the others' results.
func (o *fetchOrchestrator) FetchAll(ctx context.Context, latitude, longitude float64) map[string]VendorResult {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]VendorResult, len(o.vendors))
	)

	sem := make(chan struct{}, o.maxWorkers)

	for _, vendor := range o.vendors {
		vendor := vendor
		wg.Add(1)
		go func() {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			days, err := vendor.Fetch(ctx, latitude, longitude)
			if err != nil {
				log.Error().Err(err).Str("vendor", vendor.Tag()).Msg("vendor fetch failed")
				days = nil
			}

			mu.Lock()
			results[vendor.Tag()] = VendorResult{Tag: vendor.Tag(), Days: days, Err: err}
			mu.Unlock()
		}()
	}

	wg.Wait()
	return results
}

// VendorOrder returns the configured vendor tags in registration order. The
// first tag is the positional-precedence vendor for aggregation.
func (o *fetchOrchestrator) VendorOrder() []string {
	order := make([]string, 0, len(o.vendors))
	for _, vendor := range o.vendors {
		order = append(order, vendor.Tag())
	}
	return order
}
