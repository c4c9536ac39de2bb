package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazypower/filemru/internal/remote"
)

var lastRemote bool

var lastCmd = &cobra.Command{
	Use:   "last [path]",
	Short: "Print or set the last-opened file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLast,
}

func init() {
	lastCmd.Flags().BoolVar(&lastRemote, "remote", false, "Go through a running filemru server")
}

func runLast(cmd *cobra.Command, args []string) error {
	if lastRemote {
		client := remote.NewClient()
		if len(args) == 1 {
			return client.SetLastOpened(args[0])
		}
		last, err := client.LastOpened()
		if err != nil {
			return fmt.Errorf("last: %w", err)
		}
		if last != "" {
			fmt.Println(last)
		}
		return nil
	}

	list, _, closeStore, err := openList()
	if err != nil {
		return err
	}
	defer closeStore()

	if len(args) == 1 {
		return list.SetLastOpened(args[0])
	}
	if last := list.LastOpened(); last != "" {
		fmt.Println(last)
	}
	return nil
}
