package insights

import (
	"fmt"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/recommend"
)

type TipsCmd struct {
	Study bool `help:"Show only study recommendations."`
	Time  bool `help:"Show only time-management tips."`
}

func (c *TipsCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	advisor := recommend.New(ctx.Metrics)

	showStudy := c.Study || !c.Time
	showTime := c.Time || !c.Study

	if showStudy {
		fmt.Println(cli.TitleStyle.Render("Study Recommendations"))
		for _, tip := range advisor.StudyRecommendations(state) {
			fmt.Printf("  - %s\n", tip)
		}
	}
	if showTime {
		if showStudy {
			fmt.Println()
		}
		fmt.Println(cli.TitleStyle.Render("Time Management"))
		for _, tip := range advisor.TimeManagementTips(state) {
			fmt.Printf("  - %s\n", tip)
		}
	}
	return nil
}
