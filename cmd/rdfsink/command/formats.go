package command

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cayleygraph/rdfsink/serializer"
	"github.com/cayleygraph/rdfsink/source"
)

func NewFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported input and output formats.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "input:")
			for _, f := range source.Formats() {
				fmt.Fprintf(w, "  %s\t%s\t\n", f.Name, strings.Join(f.Ext, " "))
			}
			fmt.Fprintln(w, "output:")
			for _, f := range serializer.Formats() {
				fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Name, strings.Join(f.Ext, " "), strings.Join(f.Mime, " "))
			}
			return w.Flush()
		},
	}
}
