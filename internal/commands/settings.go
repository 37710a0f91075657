package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/model"
)

func newSettingsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change user settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			s := ws.settings
			fmt.Printf("userName                     %s\n", s.UserName)
			fmt.Printf("currency                     %s\n", s.Currency)
			fmt.Printf("theme                        %s\n", s.Theme)
			fmt.Printf("autoSync.upi                 %t\n", s.AutoSync.UPI)
			fmt.Printf("autoSync.sms                 %t\n", s.AutoSync.SMS)
			fmt.Printf("notifications.budgetAlerts   %t\n", s.Notifications.BudgetAlerts)
			fmt.Printf("notifications.dailySummary   %t\n", s.Notifications.DailySummary)
			fmt.Printf("notifications.unusualSpending %t\n", s.Notifications.UnusualSpending)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Change a setting",
		Long: "Changes one setting. Keys mirror the settings file: userName, " +
			"currency, theme, autoSync.upi, autoSync.sms, " +
			"notifications.budgetAlerts, notifications.dailySummary, " +
			"notifications.unusualSpending.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			updated, err := applySetting(ws.settings, args[0], args[1])
			if err != nil {
				return err
			}
			if err := ws.store.SaveSettings(updated); err != nil {
				return err
			}
			fmt.Printf("Set %s to %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}

func applySetting(s model.Settings, key, value string) (model.Settings, error) {
	boolVal := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid value %q for %s (want true or false)", value, key)
		}
		return b, nil
	}

	var err error
	switch key {
	case "userName":
		s.UserName = value
	case "currency":
		s.Currency = value
	case "theme":
		if value != "dark" && value != "light" {
			return s, fmt.Errorf("invalid theme %q (want dark or light)", value)
		}
		s.Theme = value
	case "autoSync.upi":
		s.AutoSync.UPI, err = boolVal()
	case "autoSync.sms":
		s.AutoSync.SMS, err = boolVal()
	case "notifications.budgetAlerts":
		s.Notifications.BudgetAlerts, err = boolVal()
	case "notifications.dailySummary":
		s.Notifications.DailySummary, err = boolVal()
	case "notifications.unusualSpending":
		s.Notifications.UnusualSpending, err = boolVal()
	default:
		return s, fmt.Errorf("unknown setting %q", key)
	}
	return s, err
}
