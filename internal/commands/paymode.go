package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPaymodeCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paymode",
		Short: "Manage payment modes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List payment modes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			modes := ws.catalog.PaymentModes()
			if len(modes) == 0 {
				fmt.Println("No payment modes")
				return nil
			}
			for _, m := range modes {
				fmt.Printf("%s %-15s %-30s (id %s)\n", m.Icon, m.Name, m.Description, m.ID)
			}
			return nil
		},
	}

	var (
		icon        string
		description string
	)
	add := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a payment mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			m, err := ws.catalog.AddPaymentMode(args[0], icon, description)
			if err != nil {
				return err
			}
			fmt.Printf("Added payment mode %s %s — id %s\n", m.Icon, m.Name, m.ID)
			return nil
		},
	}
	add.Flags().StringVar(&icon, "icon", "", "display icon")
	add.Flags().StringVar(&description, "description", "", "display text")

	rm := &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove a payment mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			if err := ws.catalog.DeletePaymentMode(args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed payment mode %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, add, rm)
	return cmd
}
