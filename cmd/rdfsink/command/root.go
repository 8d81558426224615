// Package command implements the rdfsink command line.
package command

import (
	"flag"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfsink"
	"github.com/cayleygraph/rdfsink/clog"
	"github.com/cayleygraph/rdfsink/internal/load"
	"github.com/cayleygraph/rdfsink/serializer"
	"github.com/cayleygraph/rdfsink/source"
	"github.com/cayleygraph/rdfsink/triple"
)

const flagProcessorGraph = "processor-graph"

// NewRootCmd returns the rdfsink command. Run with a single file or URL it
// converts the document and writes the serialization to stdout.
func NewRootCmd() *cobra.Command {
	var (
		configFile string
		quiet      bool
	)
	cmd := &cobra.Command{
		Use:   "rdfsink [flags] <file|URL>",
		Short: "Convert a document into N-Triples, RDF/XML or JSON-LD.",
		Long: "rdfsink reads an N-Quads or JSON-LD document from a file or http(s) URL\n" +
			"and writes the extracted default graph, or with -p the processor graph\n" +
			"of parser diagnostics, to stdout.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog flags are registered on the standard flag set and read from there.
			flag.CommandLine.Parse([]string{})
			if quiet {
				clog.SetV(-1)
			}
			return initConfig(configFile)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError(cmd, "expected exactly one file or URL, got %d arguments", len(args))
			}
			return nil
		},
		RunE: runConvert,
	}
	flag.Set("logtostderr", "true")
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "path to an explicit configuration file")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")

	cmd.Flags().BoolP(flagProcessorGraph, "p", false, "output the processor graph instead of the default graph")
	cmd.Flags().String("format", serializer.NTriples, "output format")
	cmd.Flags().String("input-format", "", "input format (detected from the file extension by default)")
	cmd.Flags().String("base", "", "base IRI (the file or URL location by default)")
	cmd.Flags().StringP("output", "o", "-", `output file ("-" for stdout, ".gz" is compressed)`)
	viper.BindPFlag(KeyFormat, cmd.Flags().Lookup("format"))
	viper.BindPFlag(KeyInputFormat, cmd.Flags().Lookup("input-format"))
	viper.BindPFlag(KeyBase, cmd.Flags().Lookup("base"))

	cmd.AddCommand(
		NewServeCmd(),
		NewFormatsCmd(),
		NewVersionCmd(),
	)
	return cmd
}

func usageError(cmd *cobra.Command, format string, args ...interface{}) error {
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

func runConvert(cmd *cobra.Command, args []string) error {
	format := viper.GetString(KeyFormat)
	if serializer.FormatByName(format) == nil {
		return usageError(cmd, "unknown output format %q", format)
	}
	input := viper.GetString(KeyInputFormat)
	if input != "" && source.ByName(input) == nil {
		return usageError(cmd, "unknown input format %q", input)
	}
	opt := rdfsink.Options{
		Input:  input,
		Format: format,
		Base:   viper.GetString(KeyBase),
		Graph:  triple.Default,
	}
	if pg, _ := cmd.Flags().GetBool(flagProcessorGraph); pg {
		opt.Graph = triple.Processor
	}
	out, err := rdfsink.ConvertFile(cmd.Context(), args[0], opt)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("output")
	w, err := load.Create(path, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, out); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
