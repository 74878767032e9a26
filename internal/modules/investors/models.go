// Package investors groups canonical investments by client and computes
// per-investor totals.
package investors

import (
	"strings"

	"github.com/jswiatek/kapital/internal/modules/investments"
)

// ClientType distinguishes natural persons from companies.
type ClientType string

const (
	ClientIndividual ClientType = "individual"
	ClientCompany    ClientType = "company"
)

// VotingStatus is a client's declared position for shareholder votes.
type VotingStatus string

const (
	VoteYes       VotingStatus = "yes"
	VoteNo        VotingStatus = "no"
	VoteAbstain   VotingStatus = "abstain"
	VoteUndecided VotingStatus = "undecided"
)

// VotingStatuses returns the four buckets in reporting order. Every voting
// partition is complete over exactly these.
func VotingStatuses() []VotingStatus {
	return []VotingStatus{VoteYes, VoteNo, VoteAbstain, VoteUndecided}
}

// NormalizeVotingStatus folds raw stored statuses, Polish or English, into
// the four buckets. Anything unrecognized counts as undecided.
func NormalizeVotingStatus(raw string) VotingStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "tak", "za":
		return VoteYes
	case "no", "nie", "przeciw":
		return VoteNo
	case "abstain", "wstrzymanie", "wstrzymuje_sie":
		return VoteAbstain
	default:
		return VoteUndecided
	}
}

// Client is an investor identity as stored in the client register.
type Client struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Type         ClientType   `json:"type"`
	VotingStatus VotingStatus `json:"voting_status"`
	IsActive     bool         `json:"is_active"`
}

// ProductTypeSubtotal is the per-product-type slice of an investor's holdings.
type ProductTypeSubtotal struct {
	Count            int     `json:"count"`
	InvestmentAmount float64 `json:"investment_amount"`
	RemainingCapital float64 `json:"remaining_capital"`
	TotalValue       float64 `json:"total_value"`
}

// InvestorSummary is one client with the investments attributed to them and
// the aggregated totals. Built fresh per request, never persisted.
type InvestorSummary struct {
	Client      Client                              `json:"client"`
	Investments []investments.CanonicalInvestment   `json:"investments"`
	ByProduct   map[investments.ProductType]ProductTypeSubtotal `json:"by_product"`

	ViableRemainingCapital float64 `json:"viable_remaining_capital"`
	TotalInvestmentAmount  float64 `json:"total_investment_amount"`
	TotalValue             float64 `json:"total_value"`
	InvestmentCount        int     `json:"investment_count"`
}
