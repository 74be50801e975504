package dashboard

import "time"

// Metadata is the descriptive record a hosting catalog reads to list the dashboard.
type Metadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryInteractiveUI is the catalog category of the dashboard.
const CategoryInteractiveUI = "interactive UI"

// Headline strings shown above the cards.
const (
	Title    = "Interactive Dashboard"
	Subtitle = "A sample dashboard showcasing TOYBOX capabilities"
)

// loadedAt stamps both timestamps once per process.
var loadedAt = time.Now().UTC()

// Info returns the catalog metadata record.
func Info() Metadata {
	return Metadata{
		Title:       Title,
		Description: "A comprehensive dashboard showcasing charts, metrics, and interactive UI components",
		Category:    CategoryInteractiveUI,
		Tags:        []string{"dashboard", "charts", "interactive", "demo", "ui"},
		CreatedAt:   loadedAt,
		UpdatedAt:   loadedAt,
	}
}
