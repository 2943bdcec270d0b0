package client

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/stats"
)

var (
	doneColor    = color.New(color.FgGreen)
	pendingColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

// RenderMissions writes missions as a table.
func RenderMissions(w io.Writer, missions []models.MissionDB) error {
	if len(missions) == 0 {
		_, err := fmt.Fprintln(w, "No missions found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	headerColor.Fprintln(tw, "ID\tSTATUS\tTITLE\tCATEGORY\tREWARD")
	for _, m := range missions {
		status := pendingColor.Sprint("pending")
		if m.IsCompleted() {
			status = doneColor.Sprint("done")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t+%d\n", m.ID, status, m.Title, m.Category, m.RewardPoints)
	}
	return tw.Flush()
}

// RenderStats writes the dashboard summary. profile may be nil.
func RenderStats(w io.Writer, s stats.Summary, profile *models.Profile) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if profile != nil {
		headerColor.Fprintf(tw, "[%s] %s <%s>\n", profile.Initials, profile.Name, profile.Email)
	}
	fmt.Fprintf(tw, "Level\t%d (%d/%d XP)\n", s.Level, s.Experience, models.XPPerLevel)
	fmt.Fprintf(tw, "Missions\t%d/%d completed\n", s.CompletedMissions, s.TotalMissions)
	fmt.Fprintf(tw, "Completion rate\t%d%%\n", s.CompletionRate)
	fmt.Fprintf(tw, "Sequence\t%d\n", s.Sequence)
	fmt.Fprintf(tw, "Conquests\t%d\n", s.Conquests)
	fmt.Fprintf(tw, "Total points\t%d\n", s.TotalPoints)
	return tw.Flush()
}

// RenderNotices writes notices, errors in red.
func RenderNotices(w io.Writer, notices []Notice) {
	for _, n := range notices {
		if n.Kind == NoticeError {
			errorColor.Fprintf(w, "✗ %s\n", n.Message)
			continue
		}
		doneColor.Fprintf(w, "✓ %s\n", n.Message)
	}
}
