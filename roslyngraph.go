package roslyngraph

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/randlee/roslyn-graph/internal/docxml"
	"github.com/randlee/roslyn-graph/internal/extract"
	"github.com/randlee/roslyn-graph/internal/metadata"
	"github.com/randlee/roslyn-graph/internal/sink"
)

// DefaultBaseIRI is the minting base used when none is configured.
const DefaultBaseIRI = extract.DefaultBaseIRI

type config struct {
	opts   extract.Options
	logger *log.Logger
	xrefs  extract.CrossReferencer
}

// Option configures an extraction run.
type Option func(*config)

// WithBaseIRI sets the base under which all identifiers are minted.
func WithBaseIRI(base string) Option {
	return func(c *config) { c.opts.BaseIRI = base }
}

// WithIncludePrivate admits private types and members. Off by default.
func WithIncludePrivate(include bool) Option {
	return func(c *config) { c.opts.IncludePrivate = include }
}

// WithIncludeInternal admits internal and protected-and-internal symbols.
// On by default.
func WithIncludeInternal(include bool) Option {
	return func(c *config) { c.opts.IncludeInternal = include }
}

// WithIncludeCompilerGenerated admits compiler-synthesized symbols. Off
// by default.
func WithIncludeCompilerGenerated(include bool) Option {
	return func(c *config) { c.opts.IncludeCompilerGenerated = include }
}

// WithIncludeExternalTypes controls whether referenced types outside the
// target module get a descriptive body. On by default; when off, their
// IRIs still appear as link targets.
func WithIncludeExternalTypes(include bool) Option {
	return func(c *config) { c.opts.IncludeExternalTypes = include }
}

// WithIncludeAttributes controls attribute-instance extraction. On by
// default.
func WithIncludeAttributes(include bool) Option {
	return func(c *config) { c.opts.IncludeAttributes = include }
}

// WithLogger routes progress output to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithCrossReferencer supplies throws and related-to edges. Use
// WithDocXRefs for the standard doc-comment provider.
func WithCrossReferencer(x CrossReferencer) Option {
	return func(c *config) { c.xrefs = x }
}

// Extract walks mod and emits its symbol graph to snk.
func Extract(mod *Module, snk TripleSink, opts ...Option) (Stats, error) {
	cfg := config{opts: extract.DefaultOptions()}
	for _, opt := range opts {
		opt(&cfg)
	}
	e := extract.New(snk, cfg.opts)
	if cfg.logger != nil {
		e.Logger = cfg.logger
	}
	e.XRefs = cfg.xrefs
	return e.Extract(mod)
}

// LoadModule reads and resolves a reflective symbol document from path.
func LoadModule(path string) (*Module, error) {
	return metadata.Load(path)
}

// ParseModule resolves a symbol document held in memory.
func ParseModule(data []byte) (*Module, error) {
	return metadata.Parse(data)
}

// NewDocXRefs builds the standard cross-reference provider over mod's
// doc-comment XML.
func NewDocXRefs(mod *Module) CrossReferencer {
	return docxml.NewProvider(mod)
}

// NewNTriples creates a sink writing line-per-fact N-Triples to w.
func NewNTriples(w io.Writer) *NTriples {
	return sink.NewNTriples(w)
}

// NewTurtle creates a sink writing prefixed Turtle to w.
func NewTurtle(w io.Writer) *Turtle {
	return sink.NewTurtle(w)
}

// NewRecorder creates an in-memory sink.
func NewRecorder() *Recorder {
	return sink.NewRecorder()
}

// NewStore creates a SQLite sink at dbPath, registering a run under
// baseIRI.
func NewStore(dbPath, baseIRI string) (*Store, error) {
	return sink.NewStore(dbPath, baseIRI)
}
