package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/compost-catch/internal/games/compost"
)

var (
	summaryCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(1, 3)
	clearedTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failedTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderSummary renders the end-of-round card with the ranked mistakes.
func renderSummary(sum compost.Summary, width, height int, helpView string) string {
	var b strings.Builder

	titleStyle := failedTitleStyle
	if sum.Cleared() {
		titleStyle = clearedTitleStyle
	}
	b.WriteString(titleStyle.Render(compost.OutcomeTitle(sum)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Difficulty  %s\n", sum.DifficultyName)
	fmt.Fprintf(&b, "Score       %d\n", sum.Score)
	fmt.Fprintf(&b, "Lives left  %d\n", sum.Lives)
	fmt.Fprintf(&b, "Items       %d/%d\n", sum.Processed, sum.Total)

	b.WriteString("\n")
	if len(sum.Mistakes) == 0 {
		b.WriteString(dimStyle.Render("No trash in the bin. Nice sorting!"))
	} else {
		b.WriteString("Oops, these don't belong in compost:\n")
		b.WriteString(mistakeTable(sum.Mistakes, width).View())
	}

	card := summaryCardStyle.Render(b.String())
	body := lipgloss.JoinVertical(lipgloss.Center, card, "", dimStyle.Render(helpView))
	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// mistakeTable lays out mistakes as a read-only table.
func mistakeTable(mistakes []compost.Mistake, width int) table.Model {
	reasonW := 40
	if width > 0 {
		reasonW = max(16, min(48, width-36))
	}
	columns := []table.Column{
		{Title: "Item", Width: 22},
		{Title: "Why", Width: reasonW},
		{Title: "×", Width: 3},
	}

	rows := make([]table.Row, len(mistakes))
	for i, mk := range mistakes {
		rows[i] = table.Row{mk.Label, mk.Reason, strconv.Itoa(mk.Count)}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}
