package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jswiatek/kapital/internal/modules/insights"
	"github.com/jswiatek/kapital/internal/modules/investments"
	"github.com/jswiatek/kapital/internal/modules/investors"
	"github.com/jswiatek/kapital/internal/modules/records"
	"github.com/jswiatek/kapital/internal/modules/voting"
)

// RecordSource supplies raw records per collection. Satisfied by
// records.Repository.
type RecordSource interface {
	FetchCollection(ctx context.Context, collection records.SourceCollection) ([]records.RawRecord, error)
}

// ClientSource supplies the active client registry. Satisfied by
// investors.Repository.
type ClientSource interface {
	GetActive(ctx context.Context) ([]investors.Client, error)
}

// Options carry the tunable analytics parameters from configuration.
type Options struct {
	MajorityThreshold float64
	RiskFreeRate      float64
	VaRConfidence     float64
}

// Service recomputes the full analytics pipeline from source data on every
// snapshot. Results are never persisted; staleness is bounded by the result
// cache in front of it, not by this service.
type Service struct {
	records    RecordSource
	clients    ClientSource
	builder    *investments.Builder
	aggregator *investors.Aggregator
	insights   *insights.Generator
	opts       Options
	log        zerolog.Logger
}

func NewService(
	recordSrc RecordSource,
	clientSrc ClientSource,
	builder *investments.Builder,
	aggregator *investors.Aggregator,
	generator *insights.Generator,
	opts Options,
	log zerolog.Logger,
) *Service {
	return &Service{
		records:    recordSrc,
		clients:    clientSrc,
		builder:    builder,
		aggregator: aggregator,
		insights:   generator,
		opts:       opts,
		log:        log.With().Str("service", "analytics").Logger(),
	}
}

// Snapshot is one consistent pass over the source data: every collection
// fetched, every usable record normalized, investors aggregated. All
// analytics accessors derive from one of these.
type Snapshot struct {
	BatchID     string
	GeneratedAt time.Time
	Investments []investments.CanonicalInvestment
	Investors   []investors.InvestorSummary
}

// Snapshot fetches and normalizes everything. A failed collection fetch
// aborts the whole snapshot; malformed individual records are skipped with
// a warning.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		BatchID:     uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}

	skipped := 0
	for _, collection := range records.Collections() {
		raw, err := s.records.FetchCollection(ctx, collection)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", collection, err)
		}

		for _, rec := range raw {
			inv, err := s.builder.Build(rec, collection)
			if err != nil {
				skipped++
				s.log.Warn().
					Err(err).
					Str("collection", string(collection)).
					Msg("Skipping malformed record")
				continue
			}
			if inv.ID == "" {
				inv.ID = uuid.NewString()
			}
			snap.Investments = append(snap.Investments, inv)
		}
	}

	clients, err := s.clients.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching clients: %w", err)
	}

	snap.Investors = s.aggregator.Aggregate(clients, snap.Investments)

	s.log.Debug().
		Str("batch_id", snap.BatchID).
		Int("investments", len(snap.Investments)).
		Int("investors", len(snap.Investors)).
		Int("skipped", skipped).
		Msg("Snapshot built")

	return snap, nil
}

// Investors returns the aggregated investor summaries.
func (s *Service) Investors(ctx context.Context) ([]investors.InvestorSummary, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Investors, nil
}

// Statistics returns the global portfolio totals.
func (s *Service) Statistics(ctx context.Context) (*PortfolioStatistics, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStatistics(snap.Investments, len(snap.Investors))
	return &stats, nil
}

// Risk returns the return-distribution metrics. A non-positive confidence
// falls back to the configured default.
func (s *Service) Risk(ctx context.Context, confidence float64) (*RiskMetrics, error) {
	if confidence <= 0 || confidence >= 1 {
		confidence = s.opts.VaRConfidence
	}
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	metrics := ComputeRisk(snap.Investments, s.opts.RiskFreeRate, confidence)
	return &metrics, nil
}

// Concentration returns the HHI, diversification and correlation measures.
func (s *Service) Concentration(ctx context.Context) (*ConcentrationMetrics, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	metrics := ComputeConcentration(snap.Investments)
	return &metrics, nil
}

// Voting returns the capital-weighted voting breakdown.
func (s *Service) Voting(ctx context.Context) (*voting.Analysis, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return voting.AnalyzeVoting(snap.Investors), nil
}

// Coalition returns the minimal majority coalition at thresholdPercent. A
// zero threshold falls back to the configured default; an out-of-range one
// is rejected by voting.FindCoalition.
func (s *Service) Coalition(ctx context.Context, thresholdPercent float64) (*voting.Coalition, error) {
	if thresholdPercent == 0 {
		thresholdPercent = s.opts.MajorityThreshold
	}
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return voting.FindCoalition(snap.Investors, thresholdPercent)
}

// Insights runs the rule engine over the default-threshold coalition and
// the voting breakdown.
func (s *Service) Insights(ctx context.Context) ([]insights.Insight, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.insightsFrom(snap)
}

// Overview computes every analytics product from a single snapshot.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	coalition, err := voting.FindCoalition(snap.Investors, s.opts.MajorityThreshold)
	if err != nil {
		return nil, err
	}
	analysis := voting.AnalyzeVoting(snap.Investors)
	stats := ComputeStatistics(snap.Investments, len(snap.Investors))

	return &Overview{
		BatchID:       snap.BatchID,
		GeneratedAt:   snap.GeneratedAt,
		Investors:     snap.Investors,
		Statistics:    stats,
		Risk:          ComputeRisk(snap.Investments, s.opts.RiskFreeRate, s.opts.VaRConfidence),
		Concentration: ComputeConcentration(snap.Investments),
		Voting:        analysis,
		Coalition:     coalition,
		Insights:      s.insights.Generate(coalition, analysis, len(snap.Investors), stats.MeanInvestment),
	}, nil
}

func (s *Service) insightsFrom(snap *Snapshot) ([]insights.Insight, error) {
	coalition, err := voting.FindCoalition(snap.Investors, s.opts.MajorityThreshold)
	if err != nil {
		return nil, err
	}
	analysis := voting.AnalyzeVoting(snap.Investors)
	stats := ComputeStatistics(snap.Investments, len(snap.Investors))
	return s.insights.Generate(coalition, analysis, len(snap.Investors), stats.MeanInvestment), nil
}
