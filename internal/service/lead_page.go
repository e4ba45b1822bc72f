package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
)

// listLeadPage runs the page query and the count query of the same
// LeadQuery concurrently. The two reads are not transactionally paired.
func listLeadPage(ctx context.Context, repo domain.LeadRepository, query domain.LeadQuery) (*domain.LeadPage, error) {
	var (
		leads []*domain.Lead
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leads, err = repo.Find(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = repo.Count(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewLeadPage(leads, query, total), nil
}

// isDomainError reports whether err is a typed error that handlers map to a
// client status and that services return unwrapped
func isDomainError(err error) bool {
	return domain.IsNotFound(err) || domain.IsConflict(err) || domain.IsValidation(err)
}

// publishEvent hands event to the bus without blocking the caller. Handlers
// keep running after the request ends and their failures are logged.
func publishEvent(ctx context.Context, bus domain.EventBus, log logger.Logger, event domain.EventPayload) {
	if bus == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	bus.PublishWithAck(context.WithoutCancel(ctx), event, func(err error) {
		if err != nil {
			log.WithFields(map[string]interface{}{
				"event_type": string(event.Type),
				"lead_id":    event.LeadID,
			}).Error(fmt.Sprintf("Event delivery failed: %v", err))
		}
	})
}
