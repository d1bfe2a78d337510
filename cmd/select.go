package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanaz/internal/kana"
	"github.com/abhisek/kanaz/internal/practice"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Inspect or change the saved kana selection",
}

var selectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the selected kana",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		out := cmd.OutOrStdout()
		ids := e.selection.IDs()
		if len(ids) == 0 {
			fmt.Fprintln(out, "No kana selected.")
			return nil
		}
		t := kana.Default()
		for _, id := range ids {
			rec, _ := t.Lookup(id)
			fmt.Fprintln(out, rec.String())
		}
		fmt.Fprintf(out, "\n%d/%d selected\n", len(ids), t.Len())
		return nil
	},
}

var selectAddCmd = &cobra.Command{
	Use:   "add ROMAJI...",
	Short: "Add kana to the selection",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := validateRomaji(args)
		if err != nil {
			return err
		}
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.selection.Add(cmd.Context(), ids...); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d kana selected.\n", e.selection.Len())
		return nil
	},
}

var selectRemoveCmd = &cobra.Command{
	Use:   "remove ROMAJI...",
	Short: "Remove kana from the selection",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := validateRomaji(args)
		if err != nil {
			return err
		}
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.selection.Remove(cmd.Context(), ids...); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d kana selected.\n", e.selection.Len())
		return nil
	},
}

var selectAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Select every kana",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.selection.SelectAll(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d kana selected.\n", e.selection.Len())
		return nil
	},
}

var selectResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the selection",
	RunE:  resetCmd.RunE,
}

// validateRomaji normalises args and rejects anything outside the table.
func validateRomaji(args []string) ([]string, error) {
	t := kana.Default()
	ids := make([]string, 0, len(args))
	var unknown []string
	for _, a := range args {
		id := practice.Normalize(a)
		if !t.Has(id) {
			unknown = append(unknown, a)
			continue
		}
		ids = append(ids, id)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown kana: %s", strings.Join(unknown, ", "))
	}
	return ids, nil
}

func init() {
	selectCmd.AddCommand(selectListCmd)
	selectCmd.AddCommand(selectAddCmd)
	selectCmd.AddCommand(selectRemoveCmd)
	selectCmd.AddCommand(selectAllCmd)
	selectCmd.AddCommand(selectResetCmd)
}
