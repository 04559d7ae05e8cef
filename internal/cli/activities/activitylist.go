package activities

import (
	"fmt"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/models"
)

type ActivityListCmd struct {
	Type string `short:"t" help:"Show only activities of this category."`
}

func (c *ActivityListCmd) Validate() error {
	if c.Type != "" {
		if _, err := models.ParseActivityType(c.Type); err != nil {
			return err
		}
	}
	return nil
}

func (c *ActivityListCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	shown := 0
	fmt.Println(cli.TitleStyle.Render("Activities"))
	for _, a := range state.Activities {
		if c.Type != "" && a.Type != models.ActivityType(c.Type) {
			continue
		}

		fmt.Printf("  %s - %s (%s, priority %s)\n", a.Name, cli.FormatHours(a.Duration), a.Type, a.Priority)
		if a.Schedulable() {
			fmt.Printf("      Preferred: %02d:00-%02d:00 on %s\n",
				a.PreferredTime.StartHour, a.PreferredTime.EndHour, cli.FormatDays(a.PreferredDays))
		}
		if a.TimeBlockID != "" {
			fmt.Printf("      Block: %s\n", a.TimeBlockID)
		}
		fmt.Printf("      ID: %s\n", a.ID)
		shown++
	}

	if shown == 0 {
		fmt.Println("No activities found")
	}
	return nil
}
