package dashboard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricKeys_DisplayOrder(t *testing.T) {
	assert.Equal(t,
		[]MetricKey{MetricUsers, MetricRevenue, MetricOrders, MetricConversion},
		MetricKeys())
}

func TestLookupMetric(t *testing.T) {
	m, ok := LookupMetric(MetricRevenue)
	require.True(t, ok)
	assert.Equal(t, "$45.2K", m.Value)
	assert.Equal(t, "+8%", m.Change)
	assert.Equal(t, EmphasisBlue, m.Emphasis)

	_, ok = LookupMetric("latency")
	assert.False(t, ok)
}

func TestMetricKey_TitleAndValid(t *testing.T) {
	assert.Equal(t, "Conversion", MetricConversion.Title())
	assert.Equal(t, "", MetricKey("").Title())
	assert.True(t, MetricOrders.Valid())
	assert.False(t, MetricKey("Orders").Valid())
	assert.Equal(t, 2, MetricOrders.Index())
}

func TestParseMetricKey(t *testing.T) {
	k, err := ParseMetricKey(" Revenue ")
	require.NoError(t, err)
	assert.Equal(t, MetricRevenue, k)

	_, err = ParseMetricKey("bounce")
	assert.Error(t, err)
}

func TestDatasets_ReturnCopies(t *testing.T) {
	rows := TimeSeries()
	require.Len(t, rows, 6)
	rows[0].Value = -1
	assert.Equal(t, 400.0, TimeSeries()[0].Value)

	shares := CategoryShares()
	require.Len(t, shares, 4)
	shares[0].Label = "Svelte"
	assert.Equal(t, "React", CategoryShares()[0].Label)

	ms := Metrics()
	ms[0].Value = "0"
	assert.Equal(t, "12.5K", Metrics()[0].Value)
}

func TestCategoryShares_SumToHundred(t *testing.T) {
	var total float64
	for _, r := range CategoryShares() {
		total += r.SharePercent
	}
	assert.Equal(t, 100.0, total)
}

func TestChartKind_ParseAndString(t *testing.T) {
	for _, p := range ChartPanels() {
		k, err := ParseChartKind(p.Kind.String())
		require.NoError(t, err)
		assert.Equal(t, p.Kind, k)
	}
	_, err := ParseChartKind("radar")
	assert.Error(t, err)
	assert.Equal(t, "unknown", ChartKind(9).String())
}

func TestInfo_JSONShape(t *testing.T) {
	info := Info()
	assert.Equal(t, CategoryInteractiveUI, info.Category)
	assert.Equal(t, info.CreatedAt, info.UpdatedAt)
	assert.Equal(t, Info().CreatedAt, info.CreatedAt, "timestamps are fixed at load")

	b, err := json.Marshal(info)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, key := range []string{"title", "description", "category", "tags", "createdAt", "updatedAt"} {
		assert.Contains(t, raw, key)
	}
}
