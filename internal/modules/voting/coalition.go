// Package voting implements majority-coalition search and voting-distribution
// analysis over investor summaries. Viable remaining capital is the voting
// weight throughout.
package voting

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jswiatek/kapital/internal/modules/investors"
	"github.com/jswiatek/kapital/pkg/formulas"
)

// DefaultThresholdPercent is the ownership threshold used when the caller
// does not specify one.
const DefaultThresholdPercent = 51.0

// ErrInvalidThreshold reports a caller-supplied threshold outside (0, 100].
var ErrInvalidThreshold = errors.New("voting: threshold must be in (0, 100]")

// Coalition is the minimal capital-ranked subset of investors whose combined
// viable capital meets the ownership threshold.
type Coalition struct {
	Holders            []investors.InvestorSummary `json:"holders"`
	Capital            float64                     `json:"capital"`
	Percentage         float64                     `json:"percentage"`
	Count              int                         `json:"count"`
	AverageHolding     float64                     `json:"average_holding"`
	MedianHolding      float64                     `json:"median_holding"`
	ConcentrationIndex float64                     `json:"concentration_index"`
}

// FindCoalition sorts investors descending by viable remaining capital (ties
// keep input order) and accumulates them until the cumulative capital reaches
// thresholdPercent of the total. A non-positive total yields an empty
// coalition with all metrics 0.
//
// A threshold outside (0, 100] is a programmer error, not a data condition.
func FindCoalition(list []investors.InvestorSummary, thresholdPercent float64) (*Coalition, error) {
	if thresholdPercent <= 0 || thresholdPercent > 100 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidThreshold, thresholdPercent)
	}

	ranked := make([]investors.InvestorSummary, len(list))
	copy(ranked, list)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ViableRemainingCapital > ranked[j].ViableRemainingCapital
	})

	var total float64
	for _, s := range ranked {
		total += s.ViableRemainingCapital
	}
	if total <= 0 {
		return &Coalition{Holders: []investors.InvestorSummary{}}, nil
	}

	target := thresholdPercent / 100 * total

	coalition := &Coalition{}
	var accumulated float64
	for _, s := range ranked {
		coalition.Holders = append(coalition.Holders, s)
		accumulated += s.ViableRemainingCapital
		if accumulated >= target {
			break
		}
	}

	holdings := make([]float64, len(coalition.Holders))
	for i, s := range coalition.Holders {
		holdings[i] = s.ViableRemainingCapital
	}

	coalition.Capital = accumulated
	coalition.Percentage = accumulated / total * 100
	coalition.Count = len(coalition.Holders)
	coalition.AverageHolding = formulas.Mean(holdings)
	coalition.MedianHolding = formulas.Median(holdings)
	// Concentration within the coalition itself: a lone holder scores 10000.
	coalition.ConcentrationIndex = formulas.HHI(holdings)

	return coalition, nil
}
