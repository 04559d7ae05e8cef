package settings

import (
	"fmt"

	"github.com/julianstephens/zenith/internal/cli"
	"github.com/julianstephens/zenith/internal/engine"
	"github.com/julianstephens/zenith/internal/models"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}
	s := state.Settings

	fmt.Println(cli.TitleStyle.Render("Settings"))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Pomodoro:"), cli.ValueStyle.Render(onOff(s.StudyTechniques.Pomodoro)))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Feynman:"), cli.ValueStyle.Render(onOff(s.StudyTechniques.Feynman)))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Spaced repetition:"), cli.ValueStyle.Render(onOff(s.StudyTechniques.Spaced)))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Concept mapping:"), cli.ValueStyle.Render(onOff(s.StudyTechniques.ConceptMapping)))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Minimum sleep:"), cli.ValueStyle.Render(fmt.Sprintf("%dh", s.MinimumSleepHours)))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Break duration:"), cli.ValueStyle.Render(fmt.Sprintf("%dm", s.BreakDuration)))
	fmt.Printf("%s %s\n", cli.LabelStyle.Render("Max study session:"), cli.ValueStyle.Render(fmt.Sprintf("%dm", s.MaximumStudySession)))
	return nil
}

type SetCmd struct {
	Pomodoro        *bool `help:"Enable or disable the pomodoro technique."`
	Feynman         *bool `help:"Enable or disable the Feynman technique."`
	Spaced          *bool `help:"Enable or disable spaced repetition."`
	ConceptMapping  *bool `help:"Enable or disable concept mapping."`
	MinSleep        *int  `help:"Minimum sleep hours per night."`
	BreakDuration   *int  `help:"Break duration in minutes."`
	MaxStudySession *int  `help:"Maximum study session length in minutes."`
}

func (c *SetCmd) Validate() error {
	if c.MinSleep != nil && (*c.MinSleep < 0 || *c.MinSleep > 24) {
		return fmt.Errorf("minimum sleep must be between 0 and 24 hours")
	}
	if c.BreakDuration != nil && *c.BreakDuration < 0 {
		return fmt.Errorf("break duration must not be negative")
	}
	if c.MaxStudySession != nil && *c.MaxStudySession <= 0 {
		return fmt.Errorf("maximum study session must be positive")
	}
	return nil
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	patch := models.SettingsPatch{
		MinimumSleepHours:   c.MinSleep,
		BreakDuration:       c.BreakDuration,
		MaximumStudySession: c.MaxStudySession,
	}

	if c.Pomodoro != nil || c.Feynman != nil || c.Spaced != nil || c.ConceptMapping != nil {
		techniques := state.Settings.StudyTechniques
		if c.Pomodoro != nil {
			techniques.Pomodoro = *c.Pomodoro
		}
		if c.Feynman != nil {
			techniques.Feynman = *c.Feynman
		}
		if c.Spaced != nil {
			techniques.Spaced = *c.Spaced
		}
		if c.ConceptMapping != nil {
			techniques.ConceptMapping = *c.ConceptMapping
		}
		patch.StudyTechniques = &techniques
	}

	if patch == (models.SettingsPatch{}) {
		return fmt.Errorf("nothing to change, pass at least one setting flag")
	}

	if _, err := ctx.Dispatch(engine.UpdateSettings{Patch: patch}); err != nil {
		return err
	}

	fmt.Println("Settings updated")
	return (&ShowCmd{}).Run(ctx)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
