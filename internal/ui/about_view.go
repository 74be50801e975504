package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"toybox/internal/dashboard"
)

// AboutView is the overlay listing the catalog metadata record.
type AboutView struct {
	Meta dashboard.Metadata
}

var _ View = (*AboutView)(nil)

// NewAboutView creates the overlay for meta.
func NewAboutView(meta dashboard.Metadata) *AboutView {
	return &AboutView{Meta: meta}
}

// Init implements View.
func (v *AboutView) Init() tea.Cmd { return nil }

// Update implements View. Esc dismisses.
func (v *AboutView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		return v, func() tea.Msg { return DismissModalMsg{} }
	}
	return v, nil
}

// View implements View.
func (v *AboutView) View() string {
	m := v.Meta
	row := func(label, value string) string {
		return fmt.Sprintf("%s %s\n", Styles.Muted.Render(fmt.Sprintf("%-12s", label)), value)
	}
	var b strings.Builder
	b.WriteString(Styles.Title.Render(m.Title) + "\n\n")
	b.WriteString(m.Description + "\n\n")
	b.WriteString(row("Category", m.Category))
	b.WriteString(row("Tags", strings.Join(m.Tags, ", ")))
	b.WriteString(row("Created", m.CreatedAt.Format(time.RFC3339)))
	b.WriteString(row("Updated", m.UpdatedAt.Format(time.RFC3339)))
	b.WriteString("\n" + Styles.Hint.Render("esc close"))
	return Styles.Box.Render(b.String())
}
