package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/activity"
)

func newActivityCommand(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the capture activity log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}

			entries, err := activity.Read(ws.dir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No activity")
				return nil
			}

			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}

			for _, e := range entries {
				id := e.TransactionID
				if id == "" {
					id = "-"
				}
				fmt.Printf("%s  %-7s %-40s %s\n",
					e.Timestamp.Format("2006-01-02 15:04"), e.Action, e.Details, id)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "show at most this many recent entries (0 for all)")

	return cmd
}
