package tracing

import (
	"context"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	// KeyRelation is "group" or "campaign"
	KeyRelation = tag.MustNewKey("relation")
	// KeyOperation is "add", "update" or "remove"
	KeyOperation = tag.MustNewKey("operation")

	membershipChanges = stats.Int64(
		"leadflow/membership_changes",
		"Number of lead memberships added, updated or removed",
		stats.UnitDimensionless,
	)

	// MembershipChangeView counts membership changes by relation and operation
	MembershipChangeView = &view.View{
		Name:        "leadflow/membership_changes",
		Description: "Lead membership changes by relation and operation",
		Measure:     membershipChanges,
		TagKeys:     []tag.Key{KeyRelation, KeyOperation},
		Aggregation: view.Count(),
	}
)

// RecordMembershipChange records one successful membership change. Nothing is
// exported unless MembershipChangeView is registered.
func RecordMembershipChange(ctx context.Context, relation, operation string) {
	_ = stats.RecordWithTags(ctx,
		[]tag.Mutator{
			tag.Upsert(KeyRelation, relation),
			tag.Upsert(KeyOperation, operation),
		},
		membershipChanges.M(1),
	)
}
