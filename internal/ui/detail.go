package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
)

// Field is one labeled line in a detail view.
type Field struct {
	Label string
	Value string
}

// Detail is the content shown for a single selected item.
type Detail struct {
	Title  string
	Fields []Field
	// Body holds free-form lines rendered under the fields, such as an
	// event description or recent chat messages.
	Body []string
}

// DetailPanel renders a Detail inside a scrollable viewport.
type DetailPanel struct {
	viewport viewport.Model
	detail   Detail
	width    int
	height   int
	hasData  bool
}

func NewDetailPanel() *DetailPanel {
	return &DetailPanel{viewport: viewport.New()}
}

// SetSize resizes the panel's scroll region.
func (d *DetailPanel) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.viewport.SetWidth(width)
	d.viewport.SetHeight(height)
	d.render()
}

// SetDetail replaces the content and scrolls back to the top.
func (d *DetailPanel) SetDetail(detail Detail) {
	d.detail = detail
	d.hasData = true
	d.render()
	d.viewport.GotoTop()
}

// Clear empties the panel.
func (d *DetailPanel) Clear() {
	d.detail = Detail{}
	d.hasData = false
	d.render()
}

// HasData reports whether the panel is showing an item.
func (d *DetailPanel) HasData() bool {
	return d.hasData
}

// Update forwards scroll keys to the viewport.
func (d *DetailPanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return cmd
}

func (d *DetailPanel) render() {
	if !d.hasData {
		d.viewport.SetContent("")
		return
	}

	labelWidth := 0
	for _, f := range d.detail.Fields {
		if len(f.Label) > labelWidth {
			labelWidth = len(f.Label)
		}
	}

	var sb strings.Builder
	sb.WriteString(DetailTitleStyle.Render(d.detail.Title))
	sb.WriteString("\n\n")
	for _, f := range d.detail.Fields {
		label := f.Label + strings.Repeat(" ", labelWidth-len(f.Label))
		sb.WriteString(DetailLabelStyle.Render(label))
		sb.WriteString("  ")
		sb.WriteString(DetailValueStyle.Render(f.Value))
		sb.WriteString("\n")
	}
	if len(d.detail.Body) > 0 {
		sb.WriteString("\n")
		for _, line := range d.detail.Body {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	d.viewport.SetContent(sb.String())
}

// View renders the panel content.
func (d *DetailPanel) View() string {
	if !d.hasData {
		return TableEmptyStyle.Render("Select an item to see details")
	}
	return d.viewport.View()
}
