package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazypower/filemru/internal/menu"
	"github.com/lazypower/filemru/internal/mru"
	"github.com/lazypower/filemru/internal/persist"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a recent file interactively",
	Long:  "Show the recent-file list as a numbered menu and read a selection. The picked path is printed to stdout and recorded as last opened.",
	RunE:  runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := persist.Open(cfg.Storage.Backend, cfg.Storage.Path, cfg.Location())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	tm := menu.NewTerm("> ")
	list := mru.New(store, tm)
	list.SetSaveState(cfg.State.SaveLastOpened)
	list.SetOnOpen(func(path string) {
		fmt.Println(path)
	})

	top, bottom := tm.Anchors()
	if err := list.BindAnchors(top, bottom); err != nil {
		return fmt.Errorf("bind menu anchors: %w", err)
	}

	return tm.Run()
}
