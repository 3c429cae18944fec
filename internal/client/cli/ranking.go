package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gymfeed/internal/client/format"
	"github.com/dmitrijs2005/gymfeed/internal/client/guard"
)

func (a *App) rankingScreen(ctx context.Context, _ map[string]string, _ guard.Location) error {
	rows, err := a.content.Ranking(ctx)
	if err != nil {
		return a.fail(ctx, err, "Failed to load the ranking.")
	}

	a.println(a.theme.Title.Render("Ranking"))
	if len(rows) == 0 {
		a.println(a.theme.Muted.Render("Nobody has scored yet."))
		return nil
	}

	me := ""
	if u := a.session.State().User; u != nil {
		me = u.Username
	}

	name := lipgloss.NewStyle().Width(20)
	for i, r := range rows {
		line := fmt.Sprintf("%3d. %s %10s  %s", i+1, name.Render(r.Username),
			format.Points(r.TotalPoints)+" pts", format.Seconds(r.TotalWorkoutDuration))
		if r.Username == me {
			line = a.theme.Accent.Render(line)
		}
		a.println(line)
	}
	return nil
}
