package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	tcell "github.com/gdamore/tcell/v2"
	keybinds "github.com/inference-gateway/keybinds/internal/keybinds"
	terminal "github.com/inference-gateway/keybinds/internal/terminal"
	icons "github.com/inference-gateway/keybinds/internal/ui/icons"
	cobra "github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all actions and their keys",
	Long:  `Display every rebindable action grouped by category with its current key.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		legacy, _ := cmd.Flags().GetBool("legacy")
		return withStore(cmd, func(ctx context.Context, store *keybinds.Store) error {
			m := store.Load(ctx)
			if legacy {
				return printLegacyLabels(cmd.OutOrStdout(), store.Legacy())
			}
			printKeybindings(cmd.OutOrStdout(), m)
			return nil
		})
	},
}

var setCmd = &cobra.Command{
	Use:   "set <action> <key>",
	Short: "Bind a key to an action",
	Long: `Bind a key to an action. Keys use physical key names; common aliases are accepted.

Example:
  keybinds set interact KeyR
  keybinds set sprint ctrl
  keybinds set chat " "`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *keybinds.Store) error {
			return runSet(ctx, cmd.OutOrStdout(), store, keybinds.ActionID(args[0]), args[1])
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset keybindings to defaults",
	Long:  `Restore the default key for every action and persist the result.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *keybinds.Store) error {
			return runReset(ctx, cmd.OutOrStdout(), store)
		})
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the stored keybindings",
	Long: `Check the stored keybindings for unknown actions, unsupported or reserved keys
and conflicts. With --fix the repaired mapping is written back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fix, _ := cmd.Flags().GetBool("fix")
		return withStore(cmd, func(ctx context.Context, store *keybinds.Store) error {
			return runValidate(ctx, cmd.OutOrStdout(), store, fix)
		})
	},
}

var captureCmd = &cobra.Command{
	Use:   "capture <action>",
	Short: "Bind the next key pressed to an action",
	Long: `Enter listening mode for an action and bind the next key pressed in the terminal.
Rejected keys keep the capture listening; press ESC to cancel.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *keybinds.Store) error {
			return runCapture(ctx, cmd.OutOrStdout(), store, keybinds.ActionID(args[0]))
		})
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every key name that can be bound",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printKeys(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("legacy", false, "Show the legacy lower-case label table instead")
	validateCmd.Flags().Bool("fix", false, "Write the repaired keybindings back to storage")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(keysCmd)
}

func printKeybindings(w io.Writer, m keybinds.Mapping) {
	actions := keybinds.Actions()
	defaults := keybinds.DefaultMapping()

	_, _ = fmt.Fprintf(w, "KEYBINDINGS (%d total)\n", len(actions))
	_, _ = fmt.Fprintf(w, "══════════════════════\n")

	var currentCategory keybinds.Category
	for _, action := range actions {
		if action.Category != currentCategory {
			currentCategory = action.Category
			_, _ = fmt.Fprintf(w, "\n%s\n", strings.ToUpper(string(currentCategory)))
			_, _ = fmt.Fprintf(w, "──────────────────\n")
		}

		status := icons.StyledCheckMark()
		if m[action.ID] != defaults[action.ID] {
			status = icons.StyledModified()
		}

		_, _ = fmt.Fprintf(w, "  %s %-16s %-14s %s\n", status, action.ID, action.Label, keybinds.Format(m[action.ID]))
	}

	_, _ = fmt.Fprintf(w, "\n%s = default, %s = customized\n", icons.StyledCheckMark(), icons.StyledModified())
	_, _ = fmt.Fprintf(w, "To customize: keybinds set <action> <key>\n")
}

func printLegacyLabels(w io.Writer, legacy *keybinds.LegacyLabels) error {
	labels := legacy.Snapshot()
	if labels == nil {
		return fmt.Errorf("legacy labels are disabled in config")
	}

	fields := make([]string, 0, len(labels))
	for field := range labels {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		_, _ = fmt.Fprintf(w, "%-20s %s\n", field, labels[field])
	}
	return nil
}

func runSet(ctx context.Context, w io.Writer, store *keybinds.Store, id keybinds.ActionID, key string) error {
	m, err := store.Rebind(ctx, id, key)
	if err != nil {
		var rebindErr *keybinds.RebindError
		if errors.As(err, &rebindErr) && rebindErr.Kind == keybinds.RejectUnknownAction {
			return fmt.Errorf("unknown action '%s'. Run 'keybinds list' to see available actions", id)
		}
		_, _ = fmt.Fprintf(w, "%s %v\n", icons.StyledCrossMark(), err)
		return fmt.Errorf("keybinding not changed: %w", err)
	}

	_, _ = fmt.Fprintf(w, "%s Keybinding updated: %s → %s\n", icons.StyledCheckMark(), keybinds.Label(id), keybinds.Format(m[id]))
	return nil
}

func runReset(ctx context.Context, w io.Writer, store *keybinds.Store) error {
	store.Reset(ctx)
	_, _ = fmt.Fprintf(w, "%s Keybindings reset to defaults\n", icons.StyledCheckMark())
	return nil
}

func runValidate(ctx context.Context, w io.Writer, store *keybinds.Store, fix bool) error {
	snap, err := store.Inspect(ctx)
	if err != nil {
		return err
	}

	if !snap.Found {
		_, _ = fmt.Fprintf(w, "%s No stored keybindings, defaults are in effect\n", icons.StyledCheckMark())
		return nil
	}
	if snap.Report.Clean() {
		_, _ = fmt.Fprintf(w, "%s Keybinding configuration is valid\n", icons.StyledCheckMark())
		return nil
	}

	printReport(w, snap.Report)

	if fix {
		store.Save(ctx, snap.Mapping)
		_, _ = fmt.Fprintf(w, "%s Repaired keybindings saved\n", icons.StyledCheckMark())
		return nil
	}

	_, _ = fmt.Fprintln(w, "Run 'keybinds validate --fix' to store the repaired keybindings.")
	return fmt.Errorf("keybinding validation failed")
}

func printReport(w io.Writer, report keybinds.Report) {
	cross := icons.StyledCrossMark()

	if report.Malformed {
		_, _ = fmt.Fprintf(w, "%s Stored keybindings are not a key/value object, defaults are in effect\n", cross)
		return
	}

	if len(report.Repairs) > 0 {
		_, _ = fmt.Fprintf(w, "%s Found bindings that fall back to their default:\n", cross)
		for _, repair := range report.Repairs {
			reason := string(repair.Reason)
			if repair.Reason == keybinds.RepairConflict {
				reason = fmt.Sprintf("%s by %s", reason, repair.Owner)
			}
			_, _ = fmt.Fprintf(w, "  - %s: %v (%s)\n", repair.Action, repair.Value, reason)
		}
	}

	if len(report.Unknown) > 0 {
		_, _ = fmt.Fprintf(w, "%s Found unknown action IDs:\n", cross)
		for _, field := range report.Unknown {
			_, _ = fmt.Fprintf(w, "  - %s\n", field)
		}
	}
}

func printKeys(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%-14s %s\n", "KEY", "LABEL")
	for _, token := range keybinds.Vocabulary() {
		marker := " "
		if keybinds.IsReserved(token) {
			marker = icons.StyledLocked()
		}
		_, _ = fmt.Fprintf(w, "%-14s %-8s %s\n", token, keybinds.Format(token), marker)
	}
	_, _ = fmt.Fprintf(w, "\n%s = reserved, cannot be bound\n", icons.StyledLocked())
}

func runCapture(ctx context.Context, w io.Writer, store *keybinds.Store, id keybinds.ActionID) error {
	if _, ok := keybinds.Lookup(id); !ok {
		return fmt.Errorf("unknown action '%s'. Run 'keybinds list' to see available actions", id)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	var lastErr error
	outcome, err := terminal.RunCapture(ctx, screen, keybinds.NewCapture(store), id, func(_ keybinds.CaptureOutcome, err error) {
		if err != nil {
			lastErr = err
		}
	})
	screen.Fini()

	if err != nil {
		return err
	}

	switch outcome {
	case keybinds.OutcomeBound:
		_, _ = fmt.Fprintf(w, "%s Keybinding updated: %s → %s\n", icons.StyledCheckMark(), keybinds.Label(id), keybinds.Format(store.Load(ctx)[id]))
	case keybinds.OutcomeCancelled:
		_, _ = fmt.Fprintf(w, "Capture cancelled, %s unchanged\n", keybinds.Label(id))
		if lastErr != nil {
			_, _ = fmt.Fprintf(w, "Last rejection: %v\n", lastErr)
		}
	}
	return nil
}
