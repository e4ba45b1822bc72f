package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/leadflow/leadflow/internal/domain"
)

// memoryStore is an in-memory stand-in for the PostgreSQL repositories.
// It keeps the same uniqueness and cascade rules as the schema.
type memoryStore struct {
	mu     sync.Mutex
	nextID int64
	now    func() time.Time

	leads       map[int64]*domain.Lead
	groups      map[int64]*domain.Group
	campaigns   map[int64]*domain.Campaign
	groupLeads  map[[2]int64]bool
	memberships map[[2]int64]*domain.LeadCampaign
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		now:         func() time.Time { return time.Now().UTC() },
		leads:       map[int64]*domain.Lead{},
		groups:      map[int64]*domain.Group{},
		campaigns:   map[int64]*domain.Campaign{},
		groupLeads:  map[[2]int64]bool{},
		memberships: map[[2]int64]*domain.LeadCampaign{},
	}
}

func (m *memoryStore) id() int64 {
	m.nextID++
	return m.nextID
}

type memoryLeads struct{ *memoryStore }
type memoryGroups struct{ *memoryStore }
type memoryCampaigns struct{ *memoryStore }

func (m memoryLeads) matching(q domain.LeadQuery) []*domain.Lead {
	var out []*domain.Lead
	for _, l := range m.leads {
		lead := *l
		switch q.Scope {
		case domain.LeadScopeGroup:
			if !m.groupLeads[[2]int64{q.ScopeID, l.ID}] {
				continue
			}
		case domain.LeadScopeCampaign:
			lc, ok := m.memberships[[2]int64{q.ScopeID, l.ID}]
			if !ok {
				continue
			}
			membership := *lc
			lead.Campaign = &membership
		}
		if q.Name != "" && !strings.Contains(strings.ToLower(lead.Name), strings.ToLower(q.Name)) {
			continue
		}
		if q.Status != "" {
			status := string(lead.Status)
			if q.Scope == domain.LeadScopeCampaign {
				status = string(lead.Campaign.Status)
			}
			if status != q.Status {
				continue
			}
		}
		out = append(out, &lead)
	}

	less := func(a, b *domain.Lead) int {
		switch q.SortBy {
		case domain.LeadSortByStatus:
			return strings.Compare(string(a.Status), string(b.Status))
		case domain.LeadSortByCreatedAt:
			return a.CreatedAt.Compare(b.CreatedAt)
		default:
			return strings.Compare(a.Name, b.Name)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		c := less(out[i], out[j])
		if q.Order == domain.SortDesc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m memoryLeads) Find(_ context.Context, q domain.LeadQuery) ([]*domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.matching(q)
	if q.Offset() >= len(all) {
		return []*domain.Lead{}, nil
	}
	end := q.Offset() + q.Limit()
	if end > len(all) {
		end = len(all)
	}
	return all[q.Offset():end], nil
}

func (m memoryLeads) Count(_ context.Context, q domain.LeadQuery) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.matching(q)), nil
}

func (m memoryLeads) FindByID(_ context.Context, id int64) (*domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.leads[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.MsgLeadNotFound)
	}
	lead := *l
	return &lead, nil
}

func (m memoryLeads) Exists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.leads[id]
	return ok, nil
}

func (m memoryLeads) Create(_ context.Context, lead *domain.Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	lead.ID = m.id()
	lead.CreatedAt = m.now()
	lead.UpdatedAt = lead.CreatedAt
	stored := *lead
	m.leads[lead.ID] = &stored
	return nil
}

func (m memoryLeads) UpdateByID(_ context.Context, id int64, u domain.LeadUpdate) (*domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.leads[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.MsgLeadNotFound)
	}
	if u.Name != nil {
		l.Name = *u.Name
	}
	if u.Email != nil {
		l.Email = *u.Email
	}
	if u.Phone != nil {
		l.Phone = *u.Phone
	}
	if u.Status != nil {
		l.Status = *u.Status
	}
	l.UpdatedAt = m.now()
	lead := *l
	return &lead, nil
}

func (m memoryLeads) DeleteByID(_ context.Context, id int64) (*domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.leads[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.MsgLeadNotFound)
	}
	delete(m.leads, id)
	for key := range m.groupLeads {
		if key[1] == id {
			delete(m.groupLeads, key)
		}
	}
	for key := range m.memberships {
		if key[1] == id {
			delete(m.memberships, key)
		}
	}
	return l, nil
}

func (m memoryGroups) Find(_ context.Context) ([]*domain.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Group, 0, len(m.groups))
	for _, g := range m.groups {
		group := *g
		out = append(out, &group)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memoryGroups) FindByID(_ context.Context, id int64) (*domain.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.MsgGroupNotFound)
	}
	group := *g
	return &group, nil
}

func (m memoryGroups) Exists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.groups[id]
	return ok, nil
}

func (m memoryGroups) Create(_ context.Context, group *domain.Group) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	group.ID = m.id()
	group.CreatedAt = m.now()
	group.UpdatedAt = group.CreatedAt
	stored := *group
	m.groups[group.ID] = &stored
	return nil
}

func (m memoryGroups) UpdateByID(_ context.Context, id int64, u domain.GroupUpdate) (*domain.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.MsgGroupNotFound)
	}
	if u.Name != nil {
		g.Name = *u.Name
	}
	if u.Description != nil {
		g.Description = *u.Description
	}
	g.UpdatedAt = m.now()
	group := *g
	return &group, nil
}

func (m memoryGroups) DeleteByID(_ context.Context, id int64) (*domain.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.MsgGroupNotFound)
	}
	delete(m.groups, id)
	for key := range m.groupLeads {
		if key[0] == id {
			delete(m.groupLeads, key)
		}
	}
	return g, nil
}

func (m memoryGroups) HasLead(_ context.Context, groupID, leadID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.groupLeads[[2]int64{groupID, leadID}], nil
}

func (m memoryGroups) AddLead(_ context.Context, groupID, leadID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]int64{groupID, leadID}
	if m.groupLeads[key] {
		return domain.NewConflictError(domain.MsgLeadAlreadyInGroup)
	}
	m.groupLeads[key] = true
	return nil
}

func (m memoryGroups) RemoveLead(_ context.Context, groupID, leadID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]int64{groupID, leadID}
	if !m.groupLeads[key] {
		return domain.NewNotFoundError(domain.MsgLeadNotInGroup)
	}
	delete(m.groupLeads, key)
	return nil
}

func (m memoryCampaigns) Find(_ context.Context, limit, offset int) ([]*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*domain.Campaign, 0, len(m.campaigns))
	for _, c := range m.campaigns {
		campaign := *c
		all = append(all, &campaign)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if offset >= len(all) {
		return []*domain.Campaign{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m memoryCampaigns) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.campaigns), nil
}

func (m memoryCampaigns) FindByID(_ context.Context, id int64) (*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.campaigns[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.MsgCampaignNotFound)
	}
	campaign := *c
	return &campaign, nil
}

func (m memoryCampaigns) Exists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.campaigns[id]
	return ok, nil
}

func (m memoryCampaigns) Create(_ context.Context, campaign *domain.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	campaign.ID = m.id()
	campaign.CreatedAt = m.now()
	campaign.UpdatedAt = campaign.CreatedAt
	stored := *campaign
	m.campaigns[campaign.ID] = &stored
	return nil
}

func (m memoryCampaigns) UpdateByID(_ context.Context, id int64, u domain.CampaignUpdate) (*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.campaigns[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.MsgCampaignNotFound)
	}
	updated := u.Apply(*c)
	updated.UpdatedAt = m.now()
	m.campaigns[id] = &updated
	campaign := updated
	return &campaign, nil
}

func (m memoryCampaigns) DeleteByID(_ context.Context, id int64) (*domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.campaigns[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.MsgCampaignNotFound)
	}
	delete(m.campaigns, id)
	for key := range m.memberships {
		if key[0] == id {
			delete(m.memberships, key)
		}
	}
	return c, nil
}

func (m memoryCampaigns) GetLeadInCampaign(_ context.Context, campaignID, leadID int64) (*domain.LeadCampaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lc, ok := m.memberships[[2]int64{campaignID, leadID}]
	if !ok {
		return nil, nil
	}
	membership := *lc
	return &membership, nil
}

func (m memoryCampaigns) AddLead(_ context.Context, membership *domain.LeadCampaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]int64{membership.CampaignID, membership.LeadID}
	if _, ok := m.memberships[key]; ok {
		return domain.NewConflictError(domain.MsgLeadAlreadyInCampaign)
	}
	if _, ok := m.campaigns[membership.CampaignID]; !ok {
		return domain.NewNotFoundError(domain.MsgCampaignOrLeadNotFound)
	}
	if _, ok := m.leads[membership.LeadID]; !ok {
		return domain.NewNotFoundError(domain.MsgCampaignOrLeadNotFound)
	}
	membership.CreatedAt = m.now()
	membership.UpdatedAt = membership.CreatedAt
	stored := *membership
	m.memberships[key] = &stored
	return nil
}

func (m memoryCampaigns) UpdateLeadStatus(_ context.Context, membership *domain.LeadCampaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	lc, ok := m.memberships[[2]int64{membership.CampaignID, membership.LeadID}]
	if !ok {
		return domain.NewNotFoundError(domain.MsgLeadNotInCampaign)
	}
	lc.Status = membership.Status
	lc.UpdatedAt = m.now()
	return nil
}

func (m memoryCampaigns) RemoveLead(_ context.Context, campaignID, leadID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]int64{campaignID, leadID}
	if _, ok := m.memberships[key]; !ok {
		return domain.NewNotFoundError(domain.MsgLeadNotInCampaign)
	}
	delete(m.memberships, key)
	return nil
}

var (
	_ domain.LeadRepository     = memoryLeads{}
	_ domain.GroupRepository    = memoryGroups{}
	_ domain.CampaignRepository = memoryCampaigns{}
)
