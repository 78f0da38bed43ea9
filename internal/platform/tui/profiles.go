package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coinrush/internal/config"
)

var (
	profileTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				MarginBottom(1)
	profileBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// profileColumns lists the difficulty table columns.
func profileColumns() []table.Column {
	return []table.Column{
		{Title: "Difficulty", Width: 10},
		{Title: "Time", Width: 6},
		{Title: "Enemies", Width: 8},
		{Title: "Speed", Width: 6},
		{Title: "Items", Width: 7},
		{Title: "Slow", Width: 6},
		{Title: "Shield", Width: 7},
	}
}

// ProfileRows formats one table row per preset, in display order.
func ProfileRows(cfg config.CoinRushConfig) []table.Row {
	rows := make([]table.Row, 0, len(config.Presets()))
	for _, preset := range config.Presets() {
		p, ok := cfg.Difficulty[preset]
		if !ok {
			continue
		}
		rows = append(rows, table.Row{
			p.Label,
			fmt.Sprintf("%ds", p.TimeLimitSec),
			fmt.Sprintf("%d", p.StartEnemies),
			fmt.Sprintf("%d-%d", p.EnemySpeedMin, p.EnemySpeedMax),
			p.ItemSpawnText(),
			fmt.Sprintf("%.1fs", float64(p.SlowDurationMs)/1000),
			fmt.Sprintf("%.1fs", float64(p.ShieldDurationMs)/1000),
		})
	}
	return rows
}

// RenderProfiles renders the difficulty table with the stage rules below it.
func RenderProfiles(cfg config.CoinRushConfig) string {
	rows := ProfileRows(cfg)
	t := table.New(
		table.WithColumns(profileColumns()),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable in a printed table
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	var b strings.Builder
	b.WriteString(profileTitleStyle.Render("COIN RUSH DIFFICULTY"))
	b.WriteString("\n")
	b.WriteString(profileBoxStyle.Render(t.View()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Stage up every %d points (max %d), enemies +%d and speed +%.0f%% per stage.\n",
		cfg.Stage.ScoreStep, cfg.Stage.MaxStage, cfg.Enemies.AddPerStage, cfg.Stage.SpeedScale*100)
	fmt.Fprintf(&b, "Guaranteed item every %d stages. SLOW scales enemy speed by %.2f.\n",
		cfg.Items.BonusEveryStages, cfg.Items.SlowMultiplier)
	return b.String()
}
