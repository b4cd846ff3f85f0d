package extract

import "github.com/randlee/roslyn-graph/internal/symbols"

// Options is the configuration snapshot one extraction run works from.
type Options struct {
	// BaseIRI is the root under which every identifier is minted.
	BaseIRI string

	// IncludePrivate admits private types and members.
	IncludePrivate bool
	// IncludeInternal admits internal and protected-and-internal symbols.
	// On by default.
	IncludeInternal bool
	// IncludeCompilerGenerated admits compiler-synthesized symbols.
	IncludeCompilerGenerated bool
	// IncludeExternalTypes controls whether referenced types outside the
	// walk get a descriptive body, or only a bare link target. On by
	// default.
	IncludeExternalTypes bool
	// IncludeAttributes controls attribute-instance extraction. On by
	// default.
	IncludeAttributes bool
}

// DefaultBaseIRI is used when Options.BaseIRI is empty.
const DefaultBaseIRI = "http://dotnet.example/graph"

// DefaultOptions returns the default configuration: internal symbols,
// external type bodies, and attributes included; private and
// compiler-generated symbols excluded.
func DefaultOptions() Options {
	return Options{
		BaseIRI:              DefaultBaseIRI,
		IncludeInternal:      true,
		IncludeExternalTypes: true,
		IncludeAttributes:    true,
	}
}

// includeSymbol is the inclusion predicate applied to every type and
// member before extraction. Compiler-synthesized symbols are gated first,
// then declared accessibility: private needs IncludePrivate, internal and
// protected-and-internal need IncludeInternal, everything else always
// passes.
func (o Options) includeSymbol(access symbols.Accessibility, synthesized bool) bool {
	if synthesized && !o.IncludeCompilerGenerated {
		return false
	}
	switch access {
	case symbols.AccessPrivate:
		return o.IncludePrivate
	case symbols.AccessInternal, symbols.AccessProtectedAndInternal:
		return o.IncludeInternal
	default:
		return true
	}
}

// includeType applies the policy to a named type declaration.
func (o Options) includeType(t *symbols.NamedType) bool {
	return o.includeSymbol(t.Accessibility, t.IsCompilerGenerated)
}

// includeMember applies the policy to a member of an included type.
func (o Options) includeMember(m symbols.Member) bool {
	return o.includeSymbol(m.MemberAccessibility(), m.Synthesized())
}
