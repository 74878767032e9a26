// Package insights derives qualitative findings from coalition and voting
// analytics through configured threshold rules. The generator is a pure
// function of its inputs and assumes they are valid engine output.
package insights

import (
	"fmt"

	"github.com/jswiatek/kapital/internal/config"
	"github.com/jswiatek/kapital/internal/modules/investors"
	"github.com/jswiatek/kapital/internal/modules/voting"
)

// Severity grades a finding.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Categories group findings for the dashboard.
const (
	CategoryConcentration = "concentration"
	CategoryVoting        = "voting"
	CategoryPortfolio     = "portfolio"
)

// Insight is a single qualitative finding.
type Insight struct {
	Category string   `json:"category"`
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
}

// Generator applies the configured rules. Thresholds come from configuration
// so operators can tune them without a code change.
type Generator struct {
	thresholds config.InsightThresholds
}

// NewGenerator creates an insight generator with the given rule thresholds
func NewGenerator(thresholds config.InsightThresholds) *Generator {
	return &Generator{thresholds: thresholds}
}

// Generate evaluates every rule against the coalition and voting outputs.
func (g *Generator) Generate(coalition *voting.Coalition, analysis *voting.Analysis, investorCount int, averageInvestment float64) []Insight {
	out := []Insight{}

	if coalition != nil && coalition.Count > 0 {
		if coalition.Count <= g.thresholds.SmallCoalitionSize {
			out = append(out, Insight{
				Category: CategoryConcentration,
				Severity: SeverityHigh,
				Title:    "Control concentrated in few hands",
				Message: fmt.Sprintf(
					"A coalition of only %d investor(s) controls %.1f%% of viable capital.",
					coalition.Count, coalition.Percentage),
			})
		} else if coalition.Count >= g.thresholds.LargeCoalitionSize {
			out = append(out, Insight{
				Category: CategoryConcentration,
				Severity: SeverityLow,
				Title:    "Ownership widely dispersed",
				Message: fmt.Sprintf(
					"Reaching a majority requires at least %d investors; ownership is well diversified.",
					coalition.Count),
			})
		}

		if coalition.ConcentrationIndex > g.thresholds.CoalitionHHI {
			out = append(out, Insight{
				Category: CategoryConcentration,
				Severity: SeverityMedium,
				Title:    "Majority coalition is internally concentrated",
				Message: fmt.Sprintf(
					"The coalition concentration index is %.0f (threshold %.0f); a few members dominate it.",
					coalition.ConcentrationIndex, g.thresholds.CoalitionHHI),
			})
		}
	}

	if analysis != nil && analysis.TotalCapital > 0 {
		undecided := analysis.PercentageByStatus[investors.VoteUndecided]
		if undecided > g.thresholds.UndecidedCapitalShare {
			out = append(out, Insight{
				Category: CategoryVoting,
				Severity: SeverityMedium,
				Title:    "Large undecided capital share",
				Message: fmt.Sprintf(
					"%.1f%% of viable capital has not declared a voting position.",
					undecided),
			})
		}

		yes := analysis.PercentageByStatus[investors.VoteYes]
		if yes > g.thresholds.YesCapitalShare {
			out = append(out, Insight{
				Category: CategoryVoting,
				Severity: SeverityLow,
				Title:    "Strong support among capital",
				Message: fmt.Sprintf(
					"%.1f%% of viable capital already supports the resolution.",
					yes),
			})
		}
	}

	if investorCount > 0 && averageInvestment > 0 {
		out = append(out, Insight{
			Category: CategoryPortfolio,
			Severity: SeverityLow,
			Title:    "Portfolio overview",
			Message: fmt.Sprintf(
				"%d investors hold an average investment of %.2f.",
				investorCount, averageInvestment),
		})
	}

	return out
}
