package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/tagsheet/pkg/layout"
	"github.com/matzehuels/tagsheet/pkg/suggest"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Sizes table
// =============================================================================

// sizesTable renders the catalogue with the per-page capacity on paper.
// Suggested rows are green; the row at cursor (if >= 0) is bold.
func sizesTable(sizes []tag.TagSize, suggested []tag.TagSize, paper tag.Paper, cursor int) string {
	rows := make([][]string, len(sizes))
	for i, s := range sizes {
		mark := ""
		if suggest.IsSuggested(s.ID, suggested) {
			mark = "★"
		}
		perPage := layout.ComputeCapacity(layout.PaperDimensions(paper), layout.TagDimensions(s)).PerPage()
		rows[i] = []string{
			fmt.Sprintf("%d", s.ID),
			s.Label,
			fmt.Sprintf("%.2f × %.2f", s.WidthMm, s.HeightMm),
			fmt.Sprintf("%d", perPage),
			mark,
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Size (in)", "Size (mm)", "Per "+paper.Label, "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(sizes) {
				return base
			}
			if row == cursor {
				base = base.Bold(true)
			}
			if suggest.IsSuggested(sizes[row].ID, suggested) {
				return base.Foreground(colorGreen)
			}
			if row == cursor {
				return base.Foreground(colorWhite)
			}
			return base.Foreground(colorGray)
		}).
		Render()
}

// =============================================================================
// SizePickerModel - Interactive size selection
// =============================================================================

// SizePickerModel is the bubbletea model for choosing tag content and a tag
// size. Number keys toggle content kinds; the suggested sizes follow the
// selection.
type SizePickerModel struct {
	Sizes    []tag.TagSize
	Paper    tag.Paper
	Content  []tag.Content
	Cursor   int
	Selected *tag.TagSize

	suggested []tag.TagSize
}

// NewSizePickerModel creates a picker starting from content on paper. The
// cursor starts on the first suggested size.
func NewSizePickerModel(content []tag.Content, paper tag.Paper) SizePickerModel {
	m := SizePickerModel{
		Sizes:   tag.Sizes(),
		Paper:   paper,
		Content: tag.NormalizeContent(content),
	}
	m.refresh()
	if len(m.suggested) > 0 {
		m.Cursor = slices.IndexFunc(m.Sizes, func(s tag.TagSize) bool { return s.ID == m.suggested[0].ID })
	}
	return m
}

func (m *SizePickerModel) refresh() {
	m.suggested = suggest.Sizes(m.Content, m.Sizes)
}

// toggle adds or removes the i-th content kind.
func (m *SizePickerModel) toggle(i int) {
	all := tag.AllContent()
	if i < 0 || i >= len(all) {
		return
	}
	c := all[i]
	if tag.Has(m.Content, c) {
		m.Content = slices.DeleteFunc(slices.Clone(m.Content), func(x tag.Content) bool { return x == c })
	} else {
		m.Content = tag.NormalizeContent(append(slices.Clone(m.Content), c))
	}
	m.refresh()
}

func (m SizePickerModel) Init() tea.Cmd {
	return nil
}

func (m SizePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch s := key.String(); s {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Sizes)-1 {
			m.Cursor++
		}
	case "enter":
		size := m.Sizes[m.Cursor]
		m.Selected = &size
		return m, tea.Quit
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			m.toggle(int(s[0] - '1'))
		}
	}
	return m, nil
}

func (m SizePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Tag Size"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  1-7 toggle content  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, c := range tag.AllContent() {
		box := "[ ]"
		style := listDimStyle
		if tag.Has(m.Content, c) {
			box, style = "[x]", listNormalStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%d %s %s", i+1, box, c.Label())))
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	b.WriteString(sizesTable(m.Sizes, m.suggested, m.Paper, m.Cursor))
	b.WriteString("\n\n")
	current := m.Sizes[m.Cursor]
	b.WriteString(listSelectedStyle.Render(fmt.Sprintf("  ▸ #%d %s", current.ID, current)))
	b.WriteString("\n")
	return b.String()
}
