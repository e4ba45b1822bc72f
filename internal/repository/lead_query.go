package repository

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/leadflow/leadflow/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var leadColumns = []string{
	"l.id", "l.name", "l.email", "l.phone", "l.status", "l.created_at", "l.updated_at",
}

var leadCampaignColumns = []string{
	"lc.campaign_id", "lc.lead_id", "lc.status", "lc.created_at", "lc.updated_at",
}

var leadSortColumns = map[domain.LeadSortField]string{
	domain.LeadSortByName:      "l.name",
	domain.LeadSortByStatus:    "l.status",
	domain.LeadSortByCreatedAt: "l.created_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applyLeadFilters adds the scope join and the filters of q. The page query
// and the count query both go through it so they always agree.
func applyLeadFilters(b sq.SelectBuilder, q domain.LeadQuery) sq.SelectBuilder {
	switch q.Scope {
	case domain.LeadScopeGroup:
		b = b.Join("group_leads gl ON gl.lead_id = l.id").
			Where(sq.Eq{"gl.group_id": q.ScopeID})
	case domain.LeadScopeCampaign:
		b = b.Join("lead_campaigns lc ON lc.lead_id = l.id").
			Where(sq.Eq{"lc.campaign_id": q.ScopeID})
	}

	if q.Name != "" {
		b = b.Where(sq.ILike{"l.name": "%" + likeEscaper.Replace(q.Name) + "%"})
	}

	if q.Status != "" {
		if q.Scope == domain.LeadScopeCampaign {
			b = b.Where(sq.Eq{"lc.status": q.Status})
		} else {
			b = b.Where(sq.Eq{"l.status": q.Status})
		}
	}

	return b
}

// buildLeadPageQuery selects one page of leads. Campaign listings also carry
// the membership columns.
func buildLeadPageQuery(q domain.LeadQuery) sq.SelectBuilder {
	columns := leadColumns
	if q.Scope == domain.LeadScopeCampaign {
		columns = append(append([]string{}, leadColumns...), leadCampaignColumns...)
	}

	sortColumn, ok := leadSortColumns[q.SortBy]
	if !ok {
		sortColumn = leadSortColumns[domain.LeadSortByName]
	}
	direction := "ASC"
	if q.Order == domain.SortDesc {
		direction = "DESC"
	}

	b := psql.Select(columns...).From("leads l")
	b = applyLeadFilters(b, q)

	return b.OrderBy(sortColumn+" "+direction, "l.id ASC").
		Limit(uint64(q.Limit())).
		Offset(uint64(q.Offset()))
}

func buildLeadCountQuery(q domain.LeadQuery) sq.SelectBuilder {
	return applyLeadFilters(psql.Select("COUNT(*)").From("leads l"), q)
}
