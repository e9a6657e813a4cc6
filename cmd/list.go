package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"github.com/stonewall-sec/auditscope/pkg/catalog"
	"github.com/stonewall-sec/auditscope/pkg/view"
)

// listCmd implements: auditscope list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the merged audit catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFlags, _ := cmd.Flags().GetString("output")
		delimiter, _ := cmd.Flags().GetString("delimiter")
		asJSON, _ := cmd.Flags().GetBool("json")

		curated, agg, err := buildCatalog(nil)
		if err != nil {
			return err
		}

		st := view.Mount(cmd.Context(), curated, agg)
		defer st.Close()

		select {
		case <-st.Done():
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}

		return writeRecords(cmd.OutOrStdout(), st.Collection(), asJSON, outputFlags, delimiter)
	},
}

func writeRecords(w io.Writer, recs []catalog.AuditRecord, asJSON bool, outputFlags, delimiter string) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}
	return catalog.PrintRecords(w, recs, outputFlags, delimiter)
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("output", "o", "nu", "Output flags. Supported: n (name), c (client), h (chain), d (date), f (findings), s (size), u (document URL). Can be combined. Example: -o nchu")
	listCmd.Flags().StringP("delimiter", "d", " ", "Delimiter character to use for txt output format")
	listCmd.Flags().Bool("json", false, "Print records as JSON")
}
