package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong/internal/storage"
)

// ReplayTable renders recordings as a static table for `pong replays`.
func ReplayTable(infos []storage.ReplayInfo) string {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Recorded", Width: 16},
		{Title: "Length", Width: 10},
		{Title: "Frames", Width: 8},
		{Title: "Seed", Width: 20},
	}

	rows := make([]table.Row, 0, len(infos))
	for _, info := range infos {
		recorded := "-"
		if !info.CreatedAt.IsZero() {
			recorded = info.CreatedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", info.ID),
			recorded,
			info.Duration.Round(100 * time.Millisecond).String(),
			fmt.Sprintf("%d", info.FrameCount),
			fmt.Sprintf("%d", info.Seed),
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	// No cursor: the table is printed once, not navigated
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithStyles(styles),
	)
	return t.View()
}
