// Package dashboard holds the static data the interactive dashboard renders:
// metric cards, chart datasets, feature cards and the catalog metadata record.
// Everything here is immutable; accessors hand out copies.
package dashboard

import (
	"fmt"
	"strings"
)

// MetricKey identifies one of the dashboard metric cards.
type MetricKey string

const (
	MetricUsers      MetricKey = "users"
	MetricRevenue    MetricKey = "revenue"
	MetricOrders     MetricKey = "orders"
	MetricConversion MetricKey = "conversion"
)

// Emphasis tags used to color a metric's change badge.
const (
	EmphasisGreen  = "green"
	EmphasisBlue   = "blue"
	EmphasisPurple = "purple"
	EmphasisOrange = "orange"
)

// Metric is the display record behind a metric card.
type Metric struct {
	Key      MetricKey
	Value    string
	Change   string
	Emphasis string
}

// metrics is in card display order.
var metrics = []Metric{
	{Key: MetricUsers, Value: "12.5K", Change: "+15%", Emphasis: EmphasisGreen},
	{Key: MetricRevenue, Value: "$45.2K", Change: "+8%", Emphasis: EmphasisBlue},
	{Key: MetricOrders, Value: "1.2K", Change: "+22%", Emphasis: EmphasisPurple},
	{Key: MetricConversion, Value: "3.4%", Change: "+0.8%", Emphasis: EmphasisOrange},
}

// DefaultMetric is the card selected when the dashboard mounts.
const DefaultMetric = MetricUsers

// Metrics returns the metric records in display order.
func Metrics() []Metric {
	out := make([]Metric, len(metrics))
	copy(out, metrics)
	return out
}

// MetricKeys returns the metric keys in display order.
func MetricKeys() []MetricKey {
	keys := make([]MetricKey, len(metrics))
	for i, m := range metrics {
		keys[i] = m.Key
	}
	return keys
}

// LookupMetric returns the record for key.
func LookupMetric(key MetricKey) (Metric, bool) {
	for _, m := range metrics {
		if m.Key == key {
			return m, true
		}
	}
	return Metric{}, false
}

// Index returns the display position of k, or -1 if k is not a known key.
func (k MetricKey) Index() int {
	for i, m := range metrics {
		if m.Key == k {
			return i
		}
	}
	return -1
}

// Valid reports whether k is one of the four metric keys.
func (k MetricKey) Valid() bool {
	return k.Index() >= 0
}

// Title returns the card heading, e.g. "Revenue".
func (k MetricKey) Title() string {
	s := string(k)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseMetricKey parses a case-insensitive metric name.
func ParseMetricKey(s string) (MetricKey, error) {
	k := MetricKey(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown metric %q", s)
	}
	return k, nil
}
