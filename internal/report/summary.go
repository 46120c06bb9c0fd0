package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/midas/internal/game"
	"github.com/lox/midas/internal/simulator"
	"github.com/lox/midas/internal/statistics"
)

// Summary renders a batch result as a table with one column per seat
func Summary(result *simulator.Result) string {
	var b strings.Builder

	games := 0
	if len(result.Seats) > 0 {
		games = result.Stats[result.Seats[0]].Games
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("Simulated %d games in %s", games, result.Elapsed.Round(time.Millisecond))))
	b.WriteString("\n\n")

	headers := append([]string{"Metric"}, result.Seats...)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return nameStyle.Padding(0, 1)
			default:
				return cellStyle
			}
		})

	for _, m := range metrics {
		row := []string{m.name}
		for _, seat := range result.Seats {
			row = append(row, m.value(result.Stats[seat]))
		}
		t.Row(row...)
	}

	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}

type metric struct {
	name  string
	value func(*statistics.Statistics) string
}

var metrics = buildMetrics()

func buildMetrics() []metric {
	m := []metric{
		{"Games", func(s *statistics.Statistics) string { return fmt.Sprint(s.Games) }},
		{"Rounds/game", func(s *statistics.Statistics) string { return fmt.Sprintf("%.1f", s.MeanRounds()) }},
		{"Hands", func(s *statistics.Statistics) string { return fmt.Sprint(s.Hands()) }},
	}
	for _, r := range game.Results {
		m = append(m, metric{r.String(), func(s *statistics.Statistics) string {
			return resultStyle(r).Render(fmt.Sprintf("%.2f%%", 100*s.Rate(r)))
		}})
	}
	return append(m,
		metric{"Wagered", func(s *statistics.Statistics) string { return fmt.Sprintf("%.2f", s.Wagered) }},
		metric{"Returned", func(s *statistics.Statistics) string { return fmt.Sprintf("%.2f", s.Returned) }},
		metric{"Mean net", func(s *statistics.Statistics) string {
			return netStyle(s.Mean()).Render(fmt.Sprintf("%+.2f ± %.2f", s.Mean(), s.StdDev()))
		}},
		metric{"95% CI", func(s *statistics.Statistics) string {
			low, high := s.ConfidenceInterval95()
			return fmt.Sprintf("[%+.2f, %+.2f]", low, high)
		}},
		metric{"Median net", func(s *statistics.Statistics) string { return fmt.Sprintf("%+.2f", s.Median()) }},
		metric{"P5 / P95", func(s *statistics.Statistics) string {
			return fmt.Sprintf("%+.2f / %+.2f", s.Percentile(0.05), s.Percentile(0.95))
		}},
		metric{"Player edge", func(s *statistics.Statistics) string {
			return netStyle(s.Edge()).Render(fmt.Sprintf("%+.3f%%", 100*s.Edge()))
		}},
		metric{"Ruined", func(s *statistics.Statistics) string {
			return fmt.Sprintf("%d (%.1f%%)", s.Ruined, 100*float64(s.Ruined)/float64(max(s.Games, 1)))
		}},
	)
}
