package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanaz/internal/kana"
	"github.com/abhisek/kanaz/internal/ui/components"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the kana reference table",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := kana.Default()
		rows := t.Rows()

		if name, _ := cmd.Flags().GetString("row"); name != "" {
			r, ok := t.Row(name)
			if !ok {
				return fmt.Errorf("unknown row %q", name)
			}
			rows = []kana.Row{r}
		}

		fmt.Fprintln(cmd.OutOrStdout(), components.RenderReference(rows))
		return nil
	},
}

func init() {
	tableCmd.Flags().String("row", "", "Print a single row, e.g. か行")
}
