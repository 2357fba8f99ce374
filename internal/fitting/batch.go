// Package fitting runs a complete fitting session: profile to deformation plan, measurements and size.
package fitting

import (
	"context"

	"github.com/jonathan/fit-estimator/internal/profile"
	"github.com/jonathan/fit-estimator/internal/sizechart"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds batch concurrency when the caller passes zero.
const DefaultWorkers = 4

// Request is one unvalidated batch input row.
type Request struct {
	ID        string  `json:"id,omitempty" yaml:"id,omitempty"`
	Height    float64 `json:"height" yaml:"height"`
	Weight    float64 `json:"weight" yaml:"weight"`
	Archetype string  `json:"archetype" yaml:"archetype"`
}

// BatchItem is the outcome for one request. Exactly one of Result and Error is set.
type BatchItem struct {
	Index  int     `json:"index"`
	ID     string  `json:"id,omitempty"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// RunBatch runs independent sessions concurrently against one chart.
// Invalid profiles are reported per item and do not stop the batch.
// Items keep input order. Cancelling ctx stops scheduling new sessions.
func RunBatch(ctx context.Context, requests []Request, chart *sizechart.Chart, workers int) ([]BatchItem, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	items := make([]BatchItem, len(requests))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, req := range requests {
		if err := gCtx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			// Each goroutine writes only its own slot.
			items[i] = runOne(i, req, chart)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func runOne(index int, req Request, chart *sizechart.Chart) BatchItem {
	item := BatchItem{Index: index, ID: req.ID}

	p, err := profile.NewFromKey(req.Height, req.Weight, req.Archetype)
	if err != nil {
		item.Error = err.Error()
		return item
	}

	result, err := NewSession(p, chart).Run()
	if err != nil {
		item.Error = err.Error()
		return item
	}

	item.Result = result
	return item
}
