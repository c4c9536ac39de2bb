package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazypower/filemru/internal/remote"
)

var addRemote bool

var addCmd = &cobra.Command{
	Use:   "add <path>...",
	Short: "Record file accesses",
	Long:  "Record one or more file accesses. Each path moves to the top of the list; the oldest entry falls off past nine.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().BoolVar(&addRemote, "remote", false, "Go through a running filemru server")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addRemote {
		client := remote.NewClient()
		for _, path := range args {
			if err := client.Add(path); err != nil {
				return fmt.Errorf("add %s: %w", path, err)
			}
		}
		return nil
	}

	list, _, closeStore, err := openList()
	if err != nil {
		return err
	}
	defer closeStore()

	for _, path := range args {
		if err := list.Add(path); err != nil {
			return fmt.Errorf("add %s: %w", path, err)
		}
	}
	return nil
}
