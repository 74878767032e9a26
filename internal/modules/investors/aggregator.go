package investors

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/jswiatek/kapital/internal/modules/investments"
)

// Aggregator attributes canonical investments to clients and computes
// per-investor totals. Stateless; one Aggregate call per request batch.
type Aggregator struct {
	log zerolog.Logger
}

// NewAggregator creates a new investor aggregator
func NewAggregator(log zerolog.Logger) *Aggregator {
	return &Aggregator{
		log: log.With().Str("component", "investor_aggregator").Logger(),
	}
}

// Aggregate groups investments by resolved client identity. Client id wins;
// a record without a client id falls back to a case-insensitive name match
// (exact or containment in either direction). Repeated investment ids within
// the batch contribute once, no investment is attributed to more than one
// investor, and clients with no matched investments are dropped.
func (a *Aggregator) Aggregate(clients []Client, invs []investments.CanonicalInvestment) []InvestorSummary {
	byClientID := make(map[string]int, len(clients))
	for i, c := range clients {
		if c.ID != "" {
			byClientID[c.ID] = i
		}
	}

	buckets := make([][]investments.CanonicalInvestment, len(clients))
	seen := make(map[string]bool, len(invs))
	var unattributed int

	for _, inv := range invs {
		if inv.ID != "" {
			if seen[inv.ID] {
				continue
			}
			seen[inv.ID] = true
		}

		idx, ok := a.matchClient(clients, byClientID, inv)
		if !ok {
			unattributed++
			continue
		}
		buckets[idx] = append(buckets[idx], inv)
	}

	if unattributed > 0 {
		a.log.Warn().
			Int("count", unattributed).
			Msg("Investments with no matching client were dropped from aggregation")
	}

	summaries := make([]InvestorSummary, 0, len(clients))
	for i, c := range clients {
		if len(buckets[i]) == 0 {
			continue
		}
		summaries = append(summaries, buildSummary(c, buckets[i]))
	}

	return summaries
}

// matchClient resolves an investment to a client index, or false when no
// client matches.
func (a *Aggregator) matchClient(clients []Client, byClientID map[string]int, inv investments.CanonicalInvestment) (int, bool) {
	if inv.ClientID != "" {
		idx, ok := byClientID[inv.ClientID]
		return idx, ok
	}

	if inv.ClientName == "" {
		return 0, false
	}

	needle := strings.ToLower(strings.TrimSpace(inv.ClientName))
	for i, c := range clients {
		haystack := strings.ToLower(strings.TrimSpace(c.Name))
		if haystack == "" {
			continue
		}
		if haystack == needle ||
			strings.Contains(haystack, needle) ||
			strings.Contains(needle, haystack) {
			return i, true
		}
	}
	return 0, false
}

func buildSummary(c Client, invs []investments.CanonicalInvestment) InvestorSummary {
	s := InvestorSummary{
		Client:      c,
		Investments: invs,
		ByProduct:   make(map[investments.ProductType]ProductTypeSubtotal),
	}

	for _, inv := range invs {
		s.ViableRemainingCapital += inv.ViableCapital
		s.TotalInvestmentAmount += inv.InvestmentAmount
		s.TotalValue += inv.TotalValue
		s.InvestmentCount++

		sub := s.ByProduct[inv.ProductType]
		sub.Count++
		sub.InvestmentAmount += inv.InvestmentAmount
		sub.RemainingCapital += inv.RemainingCapital
		sub.TotalValue += inv.TotalValue
		s.ByProduct[inv.ProductType] = sub
	}

	return s
}
