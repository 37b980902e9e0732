package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bjaus/visualijoper"
	"github.com/bjaus/visualijoper/internal/config"
	"github.com/bjaus/visualijoper/internal/logging"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	pageHead = "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>vjdump</title>\n</head>\n<body>\n"
	pageTail = "</body>\n</html>\n"
	stdinArg = "-"
)

func newRootCmd() *cobra.Command {
	var (
		verbosity int
		flags     config.Config
	)

	cmd := &cobra.Command{
		Use:   "vjdump [file...]",
		Short: "Render YAML or JSON documents as collapsible HTML trees",
		Long: `vjdump reads YAML or JSON documents from files, or from standard input
when no file (or "-") is given, and writes one collapsible HTML tree per
document. Keys keep the order they are written in.

Flag defaults can be set with VJDUMP_LABEL, VJDUMP_NO_ASSETS, VJDUMP_PAGE,
VJDUMP_MEASURE, VJDUMP_LIMIT and VJDUMP_ALL_FIELDS.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("label") {
				cfg.Label = flags.Label
			}
			if f.Changed("no-assets") {
				cfg.NoAssets = flags.NoAssets
			}
			if f.Changed("page") {
				cfg.Page = flags.Page
			}
			if f.Changed("measure") {
				cfg.Measure = flags.Measure
			}
			if f.Changed("limit") {
				cfg.Limit = flags.Limit
			}
			if f.Changed("all-fields") {
				cfg.AllFields = flags.AllFields
			}
			logger := logging.New(cmd.ErrOrStderr(), verbosity)
			logger.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
			return run(cmd, cfg, logger, args)
		},
	}

	f := cmd.Flags()
	f.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	f.StringVarP(&flags.Label, "label", "l", "", "Label shown above each document (default: input name)")
	f.BoolVar(&flags.NoAssets, "no-assets", false, "Do not emit the CSS/JS bundle")
	f.BoolVar(&flags.Page, "page", true, "Wrap the output in a complete HTML page")
	f.StringVar(&flags.Measure, "measure", visualijoper.MeasureRunes.String(), "String length unit: runes, graphemes, columns or bytes")
	f.IntVar(&flags.Limit, "limit", visualijoper.DefaultSummaryLimit, "Units shown in string summaries, 0 for no limit")
	f.BoolVar(&flags.AllFields, "all-fields", false, "Include unexported fields of decoded objects such as timestamps")

	return cmd
}

type input struct {
	name string
	data []byte
}

// documentLocation reports where a document starts in its input instead of
// a Go call site.
type documentLocation struct {
	file string
	line int
}

func (d documentLocation) Caller(int) (string, int, bool) {
	return d.file, d.line, true
}

func run(cmd *cobra.Command, cfg config.Config, logger zerolog.Logger, args []string) error {
	measure, err := visualijoper.ParseMeasure(cfg.Measure)
	if err != nil {
		return err
	}
	inputs, err := readInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if cfg.Page {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return errors.Wrap(err, "write page header")
		}
	}

	assets := visualijoper.NewAssets()
	for _, in := range inputs {
		docs, err := visualijoper.DecodeYAMLDocuments(in.data)
		if err != nil {
			return errors.Wrapf(err, "%s", in.name)
		}
		logger.Info().Str("input", in.name).Int("documents", len(docs)).Msg("Rendering input")
		for i, doc := range docs {
			label := cfg.Label
			if label == "" {
				label = in.name
			}
			if len(docs) > 1 {
				label = fmt.Sprintf("%s #%d", label, i+1)
			}
			opts := []visualijoper.Option{
				visualijoper.WithLabel(label),
				visualijoper.WithAssets(assets),
				visualijoper.WithCaller(documentLocation{file: in.name, line: doc.Line}),
				visualijoper.WithMeasure(measure),
				visualijoper.WithSummaryLimit(cfg.Limit),
				visualijoper.WithLogger(logger),
			}
			if cfg.NoAssets {
				opts = append(opts, visualijoper.WithoutAssets())
			}
			if cfg.AllFields {
				opts = append(opts, visualijoper.WithFieldMapper(visualijoper.AllFields))
			}
			if err := visualijoper.Dump(w, doc.Value, opts...); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return errors.Wrap(err, "write separator")
			}
		}
	}

	if cfg.Page {
		if _, err := io.WriteString(w, pageTail); err != nil {
			return errors.Wrap(err, "write page footer")
		}
	}
	return nil
}

func readInputs(stdin io.Reader, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{stdinArg}
	}
	inputs := make([]input, 0, len(args))
	for _, arg := range args {
		if arg == stdinArg {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, errors.Wrap(err, "read stdin")
			}
			inputs = append(inputs, input{name: "stdin", data: data})
			continue
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", arg)
		}
		inputs = append(inputs, input{name: arg, data: data})
	}
	return inputs, nil
}
