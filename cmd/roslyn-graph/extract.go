package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/spf13/cobra"

	roslyngraph "github.com/randlee/roslyn-graph"
)

var (
	flagOutput  string
	flagFormat  string
	flagBaseIRI string
	flagConfig  string

	flagIncludePrivate    bool
	flagExcludeInternal   bool
	flagIncludeGenerated  bool
	flagExcludeExternal   bool
	flagExcludeAttributes bool
	flagNoXRefs           bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <symbol-document>",
	Short: "Extract a module's symbol graph to RDF",
	Long:  "Reads a reflective symbol document (JSON) and emits the module's type surface as RDF triples in N-Triples, Turtle, or a SQLite fact store.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output path (default: stdout, or <input>.db for sqlite)")
	extractCmd.Flags().StringVarP(&flagFormat, "format", "f", "turtle", "output format: turtle|ttl|ntriples|nt|sqlite")
	extractCmd.Flags().StringVar(&flagBaseIRI, "base-iri", "", "base IRI for minted identifiers")
	extractCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "TOML configuration file")

	extractCmd.Flags().BoolVar(&flagIncludePrivate, "include-private", false, "include private types and members")
	extractCmd.Flags().BoolVar(&flagExcludeInternal, "exclude-internal", false, "exclude internal types and members")
	extractCmd.Flags().BoolVar(&flagIncludeGenerated, "include-compiler-generated", false, "include compiler-generated symbols")
	extractCmd.Flags().BoolVar(&flagExcludeExternal, "exclude-external-types", false, "emit referenced external types as bare identifiers")
	extractCmd.Flags().BoolVar(&flagExcludeAttributes, "exclude-attributes", false, "skip attribute instances")
	extractCmd.Flags().BoolVar(&flagNoXRefs, "no-xrefs", false, "skip throws/related-to edges from doc comments")
}

func runExtract(cmd *cobra.Command, args []string) error {
	start := time.Now()
	logger := newLogger()

	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	format := cfg.Format
	if format == "" || cmd.Flags().Changed("format") {
		format = flagFormat
	}
	output := cfg.Output
	if cmd.Flags().Changed("output") {
		output = flagOutput
	}
	baseIRI := cfg.BaseIRI
	if cmd.Flags().Changed("base-iri") {
		baseIRI = flagBaseIRI
	}

	mod, err := roslyngraph.LoadModule(args[0])
	if err != nil {
		return err
	}
	logger.Debug("loaded symbol document", "module", mod.Name, "version", mod.Version)

	opts := []roslyngraph.Option{roslyngraph.WithLogger(logger)}
	if baseIRI != "" {
		opts = append(opts, roslyngraph.WithBaseIRI(baseIRI))
	}
	opts = append(opts, policyOptions(cmd, cfg)...)
	if xrefsEnabled(cmd, cfg) {
		opts = append(opts, roslyngraph.WithCrossReferencer(roslyngraph.NewDocXRefs(mod)))
	}

	snk, closeSink, err := openSink(format, output, args[0], baseIRI)
	if err != nil {
		return err
	}

	stats, err := roslyngraph.Extract(mod, snk, opts...)
	if cerr := closeSink(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	logger.Info("done",
		"types", stats.Types,
		"facts", stats.Facts,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// policyOptions translates config file values and then flags into
// extraction options; flags win when set.
func policyOptions(cmd *cobra.Command, cfg fileConfig) []roslyngraph.Option {
	var opts []roslyngraph.Option

	includePrivate := boolOr(cfg.IncludePrivate, false)
	if cmd.Flags().Changed("include-private") {
		includePrivate = flagIncludePrivate
	}
	opts = append(opts, roslyngraph.WithIncludePrivate(includePrivate))

	includeInternal := boolOr(cfg.IncludeInternal, true)
	if cmd.Flags().Changed("exclude-internal") {
		includeInternal = !flagExcludeInternal
	}
	opts = append(opts, roslyngraph.WithIncludeInternal(includeInternal))

	includeGenerated := boolOr(cfg.IncludeCompilerGenerated, false)
	if cmd.Flags().Changed("include-compiler-generated") {
		includeGenerated = flagIncludeGenerated
	}
	opts = append(opts, roslyngraph.WithIncludeCompilerGenerated(includeGenerated))

	includeExternal := boolOr(cfg.IncludeExternalTypes, true)
	if cmd.Flags().Changed("exclude-external-types") {
		includeExternal = !flagExcludeExternal
	}
	opts = append(opts, roslyngraph.WithIncludeExternalTypes(includeExternal))

	includeAttrs := boolOr(cfg.IncludeAttributes, true)
	if cmd.Flags().Changed("exclude-attributes") {
		includeAttrs = !flagExcludeAttributes
	}
	opts = append(opts, roslyngraph.WithIncludeAttributes(includeAttrs))

	return opts
}

func xrefsEnabled(cmd *cobra.Command, cfg fileConfig) bool {
	enabled := boolOr(cfg.XRefs, true)
	if cmd.Flags().Changed("no-xrefs") {
		enabled = !flagNoXRefs
	}
	return enabled
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

// openSink builds the sink for the requested format. Textual formats
// accept the rdf-go aliases (ttl, nt); "sqlite" loads facts into a
// database next to the input unless --output names one.
func openSink(format, output, input, baseIRI string) (roslyngraph.TripleSink, func() error, error) {
	if format == "sqlite" {
		dbPath := output
		if dbPath == "" {
			dbPath = input + ".db"
		}
		if baseIRI == "" {
			baseIRI = roslyngraph.DefaultBaseIRI
		}
		store, err := roslyngraph.NewStore(dbPath, baseIRI)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}

	parsed, ok := rdf.ParseFormat(format)
	if !ok {
		return nil, nil, fmt.Errorf("unknown output format %q", format)
	}

	var w io.Writer = os.Stdout
	closeOut := func() error { return nil }
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return nil, nil, fmt.Errorf("create output: %w", err)
		}
		w = f
		closeOut = f.Close
	}

	switch parsed {
	case rdf.FormatTurtle:
		return roslyngraph.NewTurtle(w), closeOut, nil
	case rdf.FormatNTriples:
		return roslyngraph.NewNTriples(w), closeOut, nil
	default:
		closeOut()
		return nil, nil, fmt.Errorf("unsupported output format %q", format)
	}
}
