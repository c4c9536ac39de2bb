package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazypower/filemru/internal/remote"
)

var clearRemote bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the recent-file list",
	Long:  "Empty the recent-file list. The last-opened path is kept.",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearRemote, "remote", false, "Go through a running filemru server")
}

func runClear(cmd *cobra.Command, args []string) error {
	if clearRemote {
		if err := remote.NewClient().Clear(); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
		return nil
	}

	list, _, closeStore, err := openList()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := list.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}
