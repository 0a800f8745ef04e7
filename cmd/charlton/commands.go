package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/charlton/builder"
	"github.com/katalvlaran/charlton/config"
	"github.com/katalvlaran/charlton/dataset"
	"github.com/katalvlaran/charlton/export"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// cliOptions holds the persistent flags shared by every subcommand.
type cliOptions struct {
	format    string
	output    string
	summary   bool
	logLevel  string
	logFormat string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "charlton",
		Short: "Generate balanced factorial designs and demo datasets",
		Long: `charlton generates small synthetic datasets for exercising formula and
model-matrix code: balanced full-factorial designs over named factors, and
demo datasets whose columns are categorical (names a..n) or numeric (p..z).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(setupLogger(stderr, opts.logLevel, opts.logFormat))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.format, "format", string(config.DefaultFormat), "Output format: csv, json, yaml, xlsx, arrow")
	pf.StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")
	pf.BoolVar(&opts.summary, "summary", false, "Print per-column statistics instead of the data")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log format: text, json")

	root.AddCommand(newBalancedCmd(opts), newDemoCmd(opts), newRunCmd(opts))

	return root
}

func newBalancedCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "balanced name=levels... [repeat=N]",
		Short:   "Balanced full-factorial design",
		Example: "  charlton balanced a=2 b=3 repeat=2 --format csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			factors, repeat, err := builder.ParseFactorArgs(args)
			if err != nil {
				return err
			}
			slog.Debug("building balanced design", "factors", factors, "repeat", repeat)
			f, err := builder.Balanced(factors, repeat)
			if err != nil {
				return err
			}
			format, err := export.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), f, format, opts.output, opts.summary)
		},
	}
}

func newDemoCmd(opts *cliOptions) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:     "demo name... [nlevels=N] [min_rows=N]",
		Short:   "Demo dataset with columns typed by name",
		Example: "  charlton demo a b x y nlevels=3 min_rows=10",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, demoOpts, err := builder.ParseDemoArgs(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				demoOpts = append(demoOpts, builder.WithSeed(seed))
			}
			slog.Debug("building demo data", "names", names)
			f, err := builder.DemoData(names, demoOpts...)
			if err != nil {
				return err
			}
			format, err := export.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), f, format, opts.output, opts.summary)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", builder.DefaultSeed, "Seed of the numeric columns")

	return cmd
}

func newRunCmd(opts *cliOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:     "run -f request.yaml",
		Short:   "Run a YAML request document",
		Args:    cobra.NoArgs,
		Example: "  charlton run -f request.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open request: %w", err)
			}
			defer in.Close()

			req, err := config.Load(in)
			if err != nil {
				return err
			}
			slog.Info("loaded request", "path", file, "kind", req.Kind)

			f, err := req.Build()
			if err != nil {
				return err
			}

			format, err := req.OutputFormat()
			if err != nil {
				return err
			}
			output := req.Output
			if cmd.Flags().Changed("format") {
				if format, err = export.ParseFormat(opts.format); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("output") {
				output = opts.output
			}
			return emit(cmd.OutOrStdout(), f, format, output, opts.summary)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Request document (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// emit writes f (or its summary) to path, or to stdout when path is empty.
func emit(stdout io.Writer, f *dataset.Frame, format export.Format, path string, summary bool) (err error) {
	w := stdout
	if path != "" {
		file, cerr := os.Create(path)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		w = file
	}

	slog.Info("writing dataset", "rows", f.Rows(), "columns", f.Len(), "format", format, "summary", summary)
	if summary {
		s, serr := f.Summary()
		if serr != nil {
			return serr
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}

	return export.Write(w, f, format)
}
