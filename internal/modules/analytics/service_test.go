package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jswiatek/kapital/internal/config"
	"github.com/jswiatek/kapital/internal/modules/insights"
	"github.com/jswiatek/kapital/internal/modules/investments"
	"github.com/jswiatek/kapital/internal/modules/investors"
	"github.com/jswiatek/kapital/internal/modules/records"
)

type fakeRecordSource struct {
	collections map[records.SourceCollection][]records.RawRecord
	err         error
}

func (f *fakeRecordSource) FetchCollection(_ context.Context, c records.SourceCollection) ([]records.RawRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.collections[c], nil
}

type fakeClientSource struct {
	clients []investors.Client
	err     error
}

func (f *fakeClientSource) GetActive(_ context.Context) ([]investors.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.clients, nil
}

func newTestService(recs *fakeRecordSource, clients *fakeClientSource) *Service {
	log := zerolog.Nop()
	resolver := records.NewResolver(false, log)
	return NewService(
		recs,
		clients,
		investments.NewBuilder(resolver, log),
		investors.NewAggregator(log),
		insights.NewGenerator(config.InsightThresholds{
			SmallCoalitionSize:    5,
			LargeCoalitionSize:    20,
			UndecidedCapitalShare: 30,
			YesCapitalShare:       60,
			CoalitionHHI:          2500,
		}),
		Options{MajorityThreshold: 51, RiskFreeRate: 2.0, VaRConfidence: 0.05},
		log,
	)
}

// Two raw bond records for the same client, one under canonical field names
// and one under the legacy Polish names, must land in a single investor
// summary with both investments counted and their amounts summed.
func TestSnapshotMergesCanonicalAndLegacyRecords(t *testing.T) {
	recs := &fakeRecordSource{collections: map[records.SourceCollection][]records.RawRecord{
		records.CollectionBonds: {
			{
				"id":               "inv-1",
				"clientId":         "client-1",
				"clientName":       "Jan Kowalski",
				"productStatus":    "active",
				"investmentAmount": 100000.0,
				"remainingCapital": 80000.0,
			},
			{
				"_id":               "inv-2",
				"klient":            "Jan Kowalski",
				"status":            "aktywny",
				"kwota_inwestycji":  "50 000,00",
				"kapital_pozostaly": "45 000,00",
			},
		},
	}}
	clients := &fakeClientSource{clients: []investors.Client{
		{ID: "client-1", Name: "Jan Kowalski", VotingStatus: investors.VoteYes, IsActive: true},
	}}

	snap, err := newTestService(recs, clients).Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Investments, 2)
	require.Len(t, snap.Investors, 1)

	summary := snap.Investors[0]
	assert.Equal(t, 2, summary.InvestmentCount)
	assert.InDelta(t, 150000, summary.TotalInvestmentAmount, 1e-9)
	assert.InDelta(t, 125000, summary.ViableRemainingCapital, 1e-9)
	assert.NotEmpty(t, snap.BatchID)
}

func TestSnapshotSkipsUnidentifiableRecords(t *testing.T) {
	recs := &fakeRecordSource{collections: map[records.SourceCollection][]records.RawRecord{
		records.CollectionLoans: {
			{"kwota_pozyczki": 1000.0}, // no identity at all
			{"id": "inv-1", "clientId": "c1", "kwota_pozyczki": 2000.0},
		},
	}}
	clients := &fakeClientSource{clients: []investors.Client{{ID: "c1", Name: "Client"}}}

	snap, err := newTestService(recs, clients).Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Investments, 1)
}

func TestSnapshotAssignsIDWhenMissing(t *testing.T) {
	recs := &fakeRecordSource{collections: map[records.SourceCollection][]records.RawRecord{
		records.CollectionShares: {
			{"clientId": "c1", "wartosc_udzialow": 500.0},
		},
	}}
	clients := &fakeClientSource{clients: []investors.Client{{ID: "c1", Name: "Client"}}}

	snap, err := newTestService(recs, clients).Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Investments, 1)
	assert.NotEmpty(t, snap.Investments[0].ID)
}

func TestSnapshotAbortsOnFetchError(t *testing.T) {
	recs := &fakeRecordSource{err: errors.New("store down")}
	clients := &fakeClientSource{}

	_, err := newTestService(recs, clients).Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store down")
}

func TestOverviewComputesEverything(t *testing.T) {
	recs := &fakeRecordSource{collections: map[records.SourceCollection][]records.RawRecord{
		records.CollectionBonds: {
			{"id": "i1", "clientId": "c1", "productStatus": "active", "investmentAmount": 1000.0, "remainingCapital": 1100.0},
			{"id": "i2", "clientId": "c2", "productStatus": "active", "investmentAmount": 2000.0, "remainingCapital": 1900.0},
		},
	}}
	clients := &fakeClientSource{clients: []investors.Client{
		{ID: "c1", Name: "A", VotingStatus: investors.VoteYes},
		{ID: "c2", Name: "B", VotingStatus: investors.VoteUndecided},
	}}

	overview, err := newTestService(recs, clients).Overview(context.Background())
	require.NoError(t, err)

	assert.Len(t, overview.Investors, 2)
	assert.InDelta(t, 3000, overview.Statistics.TotalInvested, 1e-9)
	assert.Equal(t, 2, overview.Risk.SampleSize)
	require.NotNil(t, overview.Voting)
	require.NotNil(t, overview.Coalition)
	assert.NotEmpty(t, overview.Insights)
	assert.NotEmpty(t, overview.BatchID)
}

func TestRiskFallsBackToDefaultConfidence(t *testing.T) {
	recs := &fakeRecordSource{collections: map[records.SourceCollection][]records.RawRecord{}}
	clients := &fakeClientSource{}

	metrics, err := newTestService(recs, clients).Risk(context.Background(), -1)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, metrics.Confidence, 1e-9)
}

func TestCoalitionRejectsOutOfRangeThreshold(t *testing.T) {
	recs := &fakeRecordSource{collections: map[records.SourceCollection][]records.RawRecord{}}
	clients := &fakeClientSource{}

	_, err := newTestService(recs, clients).Coalition(context.Background(), 150)
	assert.Error(t, err)
}
