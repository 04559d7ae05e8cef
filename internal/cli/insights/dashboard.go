package insights

import (
	"fmt"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/models"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	summary := ctx.Metrics.Compute(state)

	fmt.Println(cli.TitleStyle.Render("Weekly Overview"))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Occupied:"), cli.ValueStyle.Render(cli.FormatHours(summary.TotalOccupied)))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Free:"), cli.ValueStyle.Render(cli.FormatHours(summary.TotalFree)))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Productivity:"),
		cli.ValueStyle.Render(fmt.Sprintf("%d%% (%s)", summary.Productivity, productivityLabel(summary.Productivity))))

	fmt.Println()
	fmt.Println(cli.TitleStyle.Render("Hours by Category"))
	for _, t := range []models.ActivityType{
		models.TypeAcademic,
		models.TypeWork,
		models.TypeStudy,
		models.TypeExercise,
		models.TypeRest,
		models.TypeSocial,
		models.TypePersonal,
		models.TypeOther,
	} {
		hours := summary.DurationByType[t]
		if hours == 0 {
			continue
		}
		fmt.Printf("%s %s\n", cli.LabelStyle.Render(string(t)+":"), cli.ValueStyle.Render(cli.FormatHours(hours)))
	}

	fmt.Println()
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Blocks:"), cli.ValueStyle.Render(fmt.Sprintf("%d", len(state.TimeBlocks))))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Activities:"), cli.ValueStyle.Render(fmt.Sprintf("%d", len(state.Activities))))
	return nil
}

func productivityLabel(pct int) string {
	switch {
	case pct < 40:
		return "Low"
	case pct < 70:
		return "Moderate"
	default:
		return "High"
	}
}
