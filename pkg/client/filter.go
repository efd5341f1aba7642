package client

import (
	"sort"
	"strings"

	"trendmatch/internal/models"
)

// Dashboard-side filtering: pure predicates over an already-fetched
// collection, recomputed from current filter state. All set fields must
// match (AND).

// CampaignFilter selects campaigns from an in-memory list.
type CampaignFilter struct {
	Search    string // case-insensitive substring over title and description
	MinBudget float64
	MaxBudget float64 // 0 means no upper bound
	Status    models.CampaignStatus
}

// Matches reports whether the campaign satisfies every set field.
func (f CampaignFilter) Matches(c models.Campaign) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Title), needle) &&
			!strings.Contains(strings.ToLower(c.Description), needle) {
			return false
		}
	}
	if f.MinBudget > 0 && c.Budget < f.MinBudget {
		return false
	}
	if f.MaxBudget > 0 && c.Budget > f.MaxBudget {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	return true
}

// FilterCampaigns returns the campaigns matching the filter, preserving
// input order.
func FilterCampaigns(campaigns []models.Campaign, f CampaignFilter) []models.Campaign {
	out := make([]models.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// CampaignSort selects the comparator for SortCampaigns.
type CampaignSort string

const (
	SortNewest          CampaignSort = "newest"
	SortDeadlineSoonest CampaignSort = "deadline"
	SortBudgetDesc      CampaignSort = "budget"
)

// SortCampaigns returns a sorted copy. The sort is stable; ties keep input
// order. An unknown sort key returns the copy unsorted.
func SortCampaigns(campaigns []models.Campaign, by CampaignSort) []models.Campaign {
	out := make([]models.Campaign, len(campaigns))
	copy(out, campaigns)

	switch by {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortDeadlineSoonest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Deadline.Before(out[j].Deadline)
		})
	case SortBudgetDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Budget > out[j].Budget
		})
	}
	return out
}

// InfluencerFilter selects influencer profiles from an in-memory list.
type InfluencerFilter struct {
	Search        string   // case-insensitive substring over name and email
	Niches        []string // any overlap with the profile's niches
	MinFollowers  int
	MaxFollowers  int // 0 means no upper bound
	MinEngagement float64
	Tier          models.Tier
	Location      string // case-insensitive substring
}

// Matches reports whether the profile satisfies every set field.
func (f InfluencerFilter) Matches(p models.InfluencerProfile) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.User.Name), needle) &&
			!strings.Contains(strings.ToLower(p.User.Email), needle) {
			return false
		}
	}
	if len(f.Niches) > 0 && !nichesOverlap(f.Niches, p.Niches) {
		return false
	}
	if f.MinFollowers > 0 && p.Followers < f.MinFollowers {
		return false
	}
	if f.MaxFollowers > 0 && p.Followers > f.MaxFollowers {
		return false
	}
	if f.MinEngagement > 0 && p.Engagement < f.MinEngagement {
		return false
	}
	if f.Tier != "" && p.Tier != f.Tier {
		return false
	}
	if f.Location != "" &&
		!strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	return true
}

// FilterInfluencers returns the profiles matching the filter, preserving
// input order.
func FilterInfluencers(profiles []models.InfluencerProfile, f InfluencerFilter) []models.InfluencerProfile {
	out := make([]models.InfluencerProfile, 0, len(profiles))
	for _, p := range profiles {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func nichesOverlap(wanted, have []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if strings.EqualFold(w, h) {
				return true
			}
		}
	}
	return false
}
