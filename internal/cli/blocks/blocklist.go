package blocks

import (
	"fmt"
	"sort"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/metrics"
	"github.com/julianstephens/zenith/internal/models"
)

type BlockListCmd struct {
	Day string `short:"d" help:"Show only blocks on this weekday."`
}

func (c *BlockListCmd) Validate() error {
	if c.Day != "" {
		if _, err := models.ParseWeekday(c.Day); err != nil {
			return err
		}
	}
	return nil
}

func (c *BlockListCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	var filter models.Weekday
	if c.Day != "" {
		filter, _ = models.ParseWeekday(c.Day)
	}

	// Group by day in week order, sorted by start time within a day.
	weekOrder := make(map[models.Weekday]int, 7)
	for i, d := range models.AllWeekdays() {
		weekOrder[d] = i
	}
	blocks := append([]models.TimeBlock(nil), state.TimeBlocks...)
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].Day != blocks[j].Day {
			return weekOrder[blocks[i].Day] < weekOrder[blocks[j].Day]
		}
		return blocks[i].StartTime < blocks[j].StartTime
	})

	shown := 0
	var lastDay models.Weekday
	for _, b := range blocks {
		if filter != "" && b.Day != filter {
			continue
		}
		if b.Day != lastDay {
			fmt.Println(cli.TitleStyle.Render(string(b.Day)))
			lastDay = b.Day
		}

		tag := ""
		if b.ActivityType != "" {
			tag = fmt.Sprintf(" [%s]", b.ActivityType)
		}
		fmt.Printf("  %s-%s %s (%s)%s %s\n",
			b.StartTime, b.EndTime, b.Title, b.Type, tag,
			cli.LabelStyle.Render(cli.FormatHours(metrics.BlockDuration(b))))
		if b.Location != "" {
			fmt.Printf("      Location: %s\n", b.Location)
		}
		fmt.Printf("      ID: %s\n", b.ID)
		shown++
	}

	if shown == 0 {
		fmt.Println("No blocks found")
	}
	return nil
}
