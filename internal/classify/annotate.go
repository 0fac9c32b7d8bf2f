package classify

import (
	"context"

	"golang.org/x/sync/errgroup"

	"triage/internal/ticket"
)

// Annotate assigns Intent and Tier to every ticket in place. Tickets are
// independent, so the batch fans out across a bounded worker pool; each
// worker writes only its own index, keeping the result order-stable.
func Annotate(ctx context.Context, tickets []ticket.Ticket, workers int) error {
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range tickets {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t := &tickets[i]
			t.Intent = Classify(t.Text)
			t.Tier = AssignTier(t.Intent, t.Text)
			return nil
		})
	}
	return g.Wait()
}
