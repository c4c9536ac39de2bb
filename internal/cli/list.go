package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazypower/filemru/internal/remote"
)

var listRemote bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the recent-file list",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listRemote, "remote", false, "Read from a running filemru server")
}

func runList(cmd *cobra.Command, args []string) error {
	if listRemote {
		entries, last, err := remote.NewClient().Recent()
		if err != nil {
			return fmt.Errorf("list: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("(no recent files)")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%d  %s\n", e.Mnemonic, e.Path)
		}
		if last != "" {
			fmt.Printf("\nlast opened: %s\n", last)
		}
		return nil
	}

	list, _, closeStore, err := openList()
	if err != nil {
		return err
	}
	defer closeStore()

	entries := list.Entries()
	if len(entries) == 0 {
		fmt.Println("(no recent files)")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%d  %s\n", e.Mnemonic, e.Path)
	}
	if last := list.LastOpened(); last != "" {
		fmt.Printf("\nlast opened: %s\n", last)
	}
	return nil
}
