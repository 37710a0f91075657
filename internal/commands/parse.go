package commands

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/activity"
	"github.com/moneytrail-dev/moneytrail/internal/money"
	"github.com/moneytrail-dev/moneytrail/internal/sms"
)

func newParseCommand(opts *rootOptions) *cobra.Command {
	var (
		category       string
		dateStr        string
		fromStdin      bool
		allowDuplicate bool
	)

	cmd := &cobra.Command{
		Use:   "parse [message]",
		Short: "Capture a transaction from bank SMS text",
		Long: "Classifies pasted SMS text and records it as a transaction. " +
			"Non-transaction text (OTPs, offers) is reported and skipped. " +
			"With --stdin, each input line is parsed as one message.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}

			var messages []string
			if fromStdin {
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					if line := scanner.Text(); line != "" {
						messages = append(messages, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
			} else {
				if len(args) != 1 {
					return fmt.Errorf("provide a message argument or --stdin")
				}
				messages = args
			}

			captured, skipped, duplicates := 0, 0, 0
			for _, msg := range messages {
				outcome, err := captureMessage(ws, msg, category, dateStr, allowDuplicate)
				if err != nil {
					return err
				}
				switch outcome {
				case captureStored:
					captured++
				case captureSkipped:
					skipped++
				case captureDuplicate:
					duplicates++
				}
			}

			fmt.Printf("%s captured, %s skipped, %s duplicate\n",
				formatCount(captured, "transaction"),
				formatCount(skipped, "message"),
				formatCount(duplicates, "message"))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "other", "category for captured transactions")
	cmd.Flags().StringVar(&dateStr, "date", "", "override the capture timestamp (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read one message per line from stdin")
	cmd.Flags().BoolVar(&allowDuplicate, "allow-duplicate", false, "store even when a duplicate is detected")

	return cmd
}

type captureOutcome int

const (
	captureStored captureOutcome = iota
	captureSkipped
	captureDuplicate
)

func captureMessage(ws *workspace, message, category, dateStr string, allowDuplicate bool) (captureOutcome, error) {
	parsed := sms.Parse(message)
	if parsed == nil {
		fmt.Printf("not a transaction: %.60q\n", message)
		return captureSkipped, nil
	}

	if dateStr != "" {
		d, err := parseDateFlag(dateStr)
		if err != nil {
			return 0, err
		}
		parsed.Date = d
	}

	candidate := parsed.Transaction()
	candidate.Category = category

	// Duplicate detection is warn-and-skip, never a hard reject.
	if ws.cfg.Capture.WarnDuplicates && !allowDuplicate {
		fp := sms.ParsedFingerprint(parsed)
		for _, existing := range ws.ledger.All() {
			e := existing
			if sms.Fingerprint(&e) == fp {
				fmt.Printf("duplicate of %s (same amount, day, and reference) — rerun with --allow-duplicate to store\n", existing.ID)
				return captureDuplicate, nil
			}
		}
	}

	stored, err := ws.ledger.Add(candidate)
	if err != nil {
		return 0, err
	}

	if err := activity.Append(ws.dir, []activity.Entry{{
		Timestamp:     time.Now(),
		Action:        "parse",
		Details:       fmt.Sprintf("%.80s", parsed.OriginalText),
		TransactionID: stored.ID,
	}}); err != nil {
		ws.log.Warn().Err(err).Msg("activity log write failed")
	}

	ref := stored.ReferenceID
	if ref == "" {
		ref = "-"
	}
	fmt.Printf("Captured %s %s via %s (ref %s) — id %s\n",
		stored.Type, money.FormatINR(stored.Amount), stored.PaymentMode, ref, stored.ID)
	return captureStored, nil
}
