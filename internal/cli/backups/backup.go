package backups

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/zenith/internal/backup"
	"github.com/julianstephens/zenith/internal/cli"
)

type CreateCmd struct{}

func (c *CreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Backups"))
	for _, b := range backups {
		fmt.Printf("  %s  %s  %d bytes\n",
			b.Timestamp.Format("2006-01-02 15:04"), filepath.Base(b.Path), b.Size)
	}
	return nil
}

type RestoreCmd struct {
	Name  string `arg:"" help:"Backup filename to restore."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *RestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	if !c.Force {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Restore backup %s?", c.Name)).
			Description("The current schedule is replaced. A backup of it is kept first.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted")
			return nil
		}
	}

	backupPath := filepath.Join(mgr.GetBackupDir(), c.Name)
	if err := mgr.RestoreBackup(backupPath); err != nil {
		return err
	}

	fmt.Printf("Restored backup: %s\n", c.Name)
	return nil
}
