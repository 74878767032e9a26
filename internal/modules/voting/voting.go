package voting

import (
	"github.com/jswiatek/kapital/internal/modules/investors"
)

// Analysis is the capital-weighted voting distribution over the four status
// buckets. The buckets are a complete partition: counts sum to the investor
// count and capitals sum to the total capital.
type Analysis struct {
	Counts                 map[investors.VotingStatus]int     `json:"counts"`
	CapitalByStatus        map[investors.VotingStatus]float64 `json:"capital_by_status"`
	PercentageByStatus     map[investors.VotingStatus]float64 `json:"percentage_by_status"`
	AverageCapitalByStatus map[investors.VotingStatus]float64 `json:"average_capital_by_status"`

	TotalCapital  float64 `json:"total_capital"`
	InvestorCount int     `json:"investor_count"`
}

// AnalyzeVoting partitions investors into the four voting buckets. A status
// outside the four buckets folds into undecided (NormalizeVotingStatus
// already guarantees this for stored data; the fold here keeps the partition
// complete for any input).
func AnalyzeVoting(list []investors.InvestorSummary) *Analysis {
	a := &Analysis{
		Counts:                 make(map[investors.VotingStatus]int, 4),
		CapitalByStatus:        make(map[investors.VotingStatus]float64, 4),
		PercentageByStatus:     make(map[investors.VotingStatus]float64, 4),
		AverageCapitalByStatus: make(map[investors.VotingStatus]float64, 4),
		InvestorCount:          len(list),
	}

	for _, status := range investors.VotingStatuses() {
		a.Counts[status] = 0
		a.CapitalByStatus[status] = 0
		a.PercentageByStatus[status] = 0
		a.AverageCapitalByStatus[status] = 0
	}

	for _, s := range list {
		status := s.Client.VotingStatus
		if _, known := a.Counts[status]; !known {
			status = investors.VoteUndecided
		}
		a.Counts[status]++
		a.CapitalByStatus[status] += s.ViableRemainingCapital
		a.TotalCapital += s.ViableRemainingCapital
	}

	for _, status := range investors.VotingStatuses() {
		if a.TotalCapital > 0 {
			a.PercentageByStatus[status] = a.CapitalByStatus[status] / a.TotalCapital * 100
		}
		if n := a.Counts[status]; n > 0 {
			a.AverageCapitalByStatus[status] = a.CapitalByStatus[status] / float64(n)
		}
	}

	return a
}
