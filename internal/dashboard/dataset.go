package dashboard

// TimeSeriesRow is one month of synthetic revenue data.
type TimeSeriesRow struct {
	Label         string
	Value         float64
	GrowthPercent float64
}

// CategoryShareRow is one slice of the technology distribution.
// ColorTag is a hex color ("#8884d8") shared by the text and image renderers.
type CategoryShareRow struct {
	Label        string
	SharePercent float64
	ColorTag     string
}

var timeSeries = []TimeSeriesRow{
	{Label: "Jan", Value: 400, GrowthPercent: 12},
	{Label: "Feb", Value: 300, GrowthPercent: 8},
	{Label: "Mar", Value: 500, GrowthPercent: 15},
	{Label: "Apr", Value: 450, GrowthPercent: 10},
	{Label: "May", Value: 600, GrowthPercent: 18},
	{Label: "Jun", Value: 550, GrowthPercent: 14},
}

var categoryShares = []CategoryShareRow{
	{Label: "React", SharePercent: 45, ColorTag: "#8884d8"},
	{Label: "Vue", SharePercent: 25, ColorTag: "#82ca9d"},
	{Label: "Angular", SharePercent: 20, ColorTag: "#ffc658"},
	{Label: "Other", SharePercent: 10, ColorTag: "#ff7c7c"},
}

// Series colors used by the bar and line charts.
const (
	BarColor  = "#8884d8"
	LineColor = "#82ca9d"
)

// TimeSeries returns the six monthly rows.
func TimeSeries() []TimeSeriesRow {
	out := make([]TimeSeriesRow, len(timeSeries))
	copy(out, timeSeries)
	return out
}

// CategoryShares returns the four technology share rows.
func CategoryShares() []CategoryShareRow {
	out := make([]CategoryShareRow, len(categoryShares))
	copy(out, categoryShares)
	return out
}
