// Package extract implements the symbol-graph walker: it traverses a
// module's namespace and type forest depth-first, applies the inclusion
// policy, mints identifiers, and streams facts to a sink. Visited-sets
// keyed by minted IRI break cycles and guarantee each entity is emitted
// at most once per run.
package extract

import (
	"encoding/hex"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/randlee/roslyn-graph/internal/iri"
	"github.com/randlee/roslyn-graph/internal/ontology"
	"github.com/randlee/roslyn-graph/internal/sink"
	"github.com/randlee/roslyn-graph/internal/symbols"
)

// CrossReferencer supplies auxiliary edges derived from documentation
// content: exception types a symbol declares it throws, and see-also
// references. Implementations return nil slices for symbols they know
// nothing about.
type CrossReferencer interface {
	// ExceptionTypes returns the types a symbol documents as thrown.
	ExceptionTypes(sym any) []symbols.TypeRef
	// SeeAlso returns referenced symbols; elements are symbols.TypeRef
	// or symbols.Member.
	SeeAlso(sym any) []any
}

// Stats summarizes one extraction run.
type Stats struct {
	// Types is the number of declared types that passed the inclusion
	// policy and were fully extracted.
	Types int
	// Facts is the sink's total emit count at the end of the run.
	Facts uint64
}

// Extractor walks one module per call to Extract. Instances are not safe
// for concurrent use; the visited-sets belong to a single walk.
type Extractor struct {
	sink   sink.TripleSink
	opts   Options
	minter *iri.Minter

	// Logger receives progress output. Defaults to log.Default().
	Logger *log.Logger
	// XRefs, when set, contributes throws and related-to edges.
	XRefs CrossReferencer

	module            *symbols.Module
	visitedTypes      map[string]struct{}
	visitedNamespaces map[string]struct{}
}

// New creates an Extractor emitting to snk under the given options.
func New(snk sink.TripleSink, opts Options) *Extractor {
	if opts.BaseIRI == "" {
		opts.BaseIRI = DefaultBaseIRI
	}
	return &Extractor{
		sink:   snk,
		opts:   opts,
		minter: iri.NewMinter(opts.BaseIRI),
		Logger: log.Default(),
	}
}

// Extract walks mod and emits its symbol graph: prefixes, the module
// fact, then every declared type that passes the inclusion policy. The
// sink is flushed before returning. The only hard failures are invariant
// violations surfaced by the minter; everything else degrades to absent
// edges.
func (e *Extractor) Extract(mod *symbols.Module) (Stats, error) {
	e.module = mod
	e.visitedTypes = make(map[string]struct{})
	e.visitedNamespaces = make(map[string]struct{})

	e.sink.AddPrefix("rdf", ontology.RDF)
	e.sink.AddPrefix("rdfs", ontology.RDFS)
	e.sink.AddPrefix("xsd", ontology.XSD)
	e.sink.AddPrefix(ontology.TgPrefix, ontology.TgNS)
	e.sink.AddPrefix(ontology.DtPrefix, ontology.DtNS)

	var stats Stats
	if err := e.emitModule(mod); err != nil {
		return stats, fmt.Errorf("extract module: %w", err)
	}

	for _, t := range mod.DeclaredTypes() {
		if !e.opts.includeType(t) {
			continue
		}
		if err := e.extractType(t); err != nil {
			return stats, fmt.Errorf("extract type %s: %w", t.MetadataName(), err)
		}
		stats.Types++
	}

	if err := e.sink.Flush(); err != nil {
		return stats, fmt.Errorf("flush sink: %w", err)
	}
	stats.Facts = e.sink.FactCount()
	e.Logger.Info("extraction complete", "types", stats.Types, "facts", stats.Facts)
	return stats, nil
}

func (e *Extractor) emitModule(mod *symbols.Module) error {
	id := e.minter.Module(mod)
	e.sink.EmitIRI(id, ontology.RDFType, ontology.Assembly)
	e.sink.EmitLiteral(id, ontology.Name, mod.Name)
	e.sink.EmitLiteral(id, ontology.Version, mod.Version)
	e.sink.EmitLiteral(id, ontology.Culture, mod.Culture)
	if len(mod.PublicKeyToken) > 0 {
		e.sink.EmitLiteral(id, ontology.PublicKeyToken, hex.EncodeToString(mod.PublicKeyToken))
	}
	e.sink.EmitBool(id, ontology.IsInteractive, mod.Interactive)
	if e.opts.IncludeAttributes {
		for i, attr := range mod.Attributes {
			if err := e.extractAttribute(mod, id, i, attr); err != nil {
				return err
			}
		}
	}
	return nil
}

// extractType emits the full fact set for a type declared in the target
// module. Idempotent: a type already in the visited set returns
// immediately, which is both the dedup guarantee and the cycle breaker.
// The identifier is marked visited before any recursion into referenced
// types.
func (e *Extractor) extractType(t *symbols.NamedType) error {
	id, err := e.minter.Type(t)
	if err != nil {
		return err
	}
	if _, seen := e.visitedTypes[id]; seen {
		return nil
	}
	e.visitedTypes[id] = struct{}{}

	e.sink.EmitIRI(id, ontology.RDFType, ontology.Type)
	e.sink.EmitIRI(id, ontology.RDFType, e.typeSubkind(t))

	e.sink.EmitLiteral(id, ontology.Name, t.Name)
	e.sink.EmitLiteral(id, ontology.FullName, t.DisplayName())
	e.sink.EmitLiteral(id, ontology.TypeKind, typeKindString(t))
	e.sink.EmitLiteral(id, ontology.Accessibility, t.Accessibility.String())

	e.sink.EmitBool(id, ontology.IsAbstract, t.IsAbstract)
	e.sink.EmitBool(id, ontology.IsSealed, t.IsSealed)
	e.sink.EmitBool(id, ontology.IsStatic, t.IsStatic)
	e.sink.EmitBool(id, ontology.IsGeneric, t.IsGeneric())
	e.sink.EmitBool(id, ontology.IsValueType, t.IsValueType)
	e.sink.EmitBool(id, ontology.IsRecord, t.IsRecord)
	e.sink.EmitBool(id, ontology.IsRefLike, t.IsRefLike)
	e.sink.EmitBool(id, ontology.IsReadOnlyType, t.IsReadOnly)
	e.sink.EmitBool(id, ontology.IsUnmanaged, t.IsUnmanaged)

	if t.Special != symbols.SpecialNone {
		e.sink.EmitLiteral(id, ontology.SpecialType, t.Special.String())
	}

	if t.EnumUnderlying != nil {
		underlying, err := e.ensureType(t.EnumUnderlying)
		if err != nil {
			return err
		}
		e.sink.EmitIRI(id, ontology.EnumUnderlyingType, underlying)
	}

	if t.Module != nil {
		e.sink.EmitIRI(id, ontology.DefinedInAssembly, e.minter.Module(t.Module))
	}
	e.sink.EmitIRI(id, ontology.InNamespace, e.ensureNamespace(t.Namespace))

	// The universal object root is every class's implicit base; linking
	// to it adds nothing.
	if t.BaseType != nil && !isObjectRoot(t.BaseType) {
		base, err := e.ensureType(t.BaseType)
		if err != nil {
			return err
		}
		e.sink.EmitIRI(id, ontology.Inherits, base)
	}

	for _, iface := range t.Interfaces {
		impl, err := e.ensureType(iface)
		if err != nil {
			return err
		}
		e.sink.EmitIRI(id, ontology.Implements, impl)
	}

	if t.ContainingType != nil {
		parent, err := e.ensureType(t.ContainingType)
		if err != nil {
			return err
		}
		e.sink.EmitIRI(id, ontology.NestedIn, parent)
	}

	for _, tp := range t.TypeParameters {
		if err := e.extractTypeParameter(id, tp); err != nil {
			return err
		}
	}

	if t.IsConstructed() {
		if err := e.emitGenericInstantiation(id, t); err != nil {
			return err
		}
	}

	if e.opts.IncludeAttributes {
		for i, attr := range t.Attributes {
			if err := e.extractAttribute(t, id, i, attr); err != nil {
				return err
			}
		}
	}

	e.emitXRefs(t, id)

	for _, mem := range t.Members {
		if !e.opts.includeMember(mem) {
			continue
		}
		if err := e.extractMember(id, mem); err != nil {
			return err
		}
	}
	return nil
}

func (e *Extractor) typeSubkind(t *symbols.NamedType) string {
	if t.IsRecord {
		return ontology.Record
	}
	switch t.Kind {
	case symbols.KindStruct:
		return ontology.Struct
	case symbols.KindInterface:
		return ontology.Interface
	case symbols.KindEnum:
		return ontology.Enum
	case symbols.KindDelegate:
		return ontology.Delegate
	default:
		return ontology.Class
	}
}

func typeKindString(t *symbols.NamedType) string {
	if t.IsRecord {
		return "Record"
	}
	return t.Kind.String()
}

// isObjectRoot reports whether a type reference is System.Object.
func isObjectRoot(t symbols.TypeRef) bool {
	named, ok := t.(*symbols.NamedType)
	return ok && named.Special == symbols.SpecialObject
}

// emitGenericInstantiation links a constructed generic to its unbound
// definition and reifies each type argument as its own node so the
// argument order stays queryable.
func (e *Extractor) emitGenericInstantiation(id string, t *symbols.NamedType) error {
	def, err := e.ensureType(t.Definition)
	if err != nil {
		return err
	}
	e.sink.EmitIRI(id, ontology.GenericDefinition, def)
	for i, arg := range t.TypeArguments {
		argNode := e.minter.TypeArgument(id, i)
		e.sink.EmitIRI(id, ontology.TypeArgument, argNode)
		e.sink.EmitIRI(argNode, ontology.RDFType, ontology.TypeArgumentNode)
		e.sink.EmitInt(argNode, ontology.ArgumentIndex, i)
		argType, err := e.ensureType(arg)
		if err != nil {
			return err
		}
		e.sink.EmitIRI(argNode, ontology.ArgumentType, argType)
	}
	return nil
}

// ensureType guarantees a referenced type has a minted identifier and, if
// policy allows, a descriptive body. Arrays and pointers recurse into
// their element first; type parameters mint a reference without a body
// since they are described at their declaration site. Named types
// declared in the target module mint only, the declared walk emits their
// body; external and constructed named types get a reduced body here:
// identity facts and generic shape, never members.
func (e *Extractor) ensureType(t symbols.TypeRef) (string, error) {
	switch t := t.(type) {
	case *symbols.ArrayType:
		elem, err := e.ensureType(t.Element)
		if err != nil {
			return "", err
		}
		id, err := e.minter.Type(t)
		if err != nil {
			return "", err
		}
		if _, seen := e.visitedTypes[id]; seen {
			return id, nil
		}
		e.visitedTypes[id] = struct{}{}
		e.sink.EmitIRI(id, ontology.RDFType, ontology.Type)
		e.sink.EmitIRI(id, ontology.RDFType, ontology.ArrayType)
		e.sink.EmitInt(id, ontology.ArrayRank, t.Rank)
		e.sink.EmitIRI(id, ontology.ArrayElementType, elem)
		return id, nil

	case *symbols.PointerType:
		pointee, err := e.ensureType(t.Pointee)
		if err != nil {
			return "", err
		}
		id, err := e.minter.Type(t)
		if err != nil {
			return "", err
		}
		if _, seen := e.visitedTypes[id]; seen {
			return id, nil
		}
		e.visitedTypes[id] = struct{}{}
		e.sink.EmitIRI(id, ontology.RDFType, ontology.Type)
		e.sink.EmitIRI(id, ontology.RDFType, ontology.PointerType)
		e.sink.EmitIRI(id, ontology.PointerElementType, pointee)
		return id, nil

	case *symbols.TypeParameter:
		return e.minter.Type(t)

	case *symbols.NamedType:
		id, err := e.minter.Type(t)
		if err != nil {
			return "", err
		}
		if t.Module == e.module && !t.IsConstructed() {
			// Declared in the target module: the declared walk owns the
			// full body, a reference only needs the link target.
			return id, nil
		}
		if _, seen := e.visitedTypes[id]; seen {
			return id, nil
		}
		e.visitedTypes[id] = struct{}{}
		if !e.opts.IncludeExternalTypes {
			// Still a usable link target, just undescribed.
			return id, nil
		}
		e.sink.EmitIRI(id, ontology.RDFType, ontology.Type)
		e.sink.EmitIRI(id, ontology.RDFType, e.typeSubkind(t))
		e.sink.EmitLiteral(id, ontology.Name, t.Name)
		e.sink.EmitLiteral(id, ontology.FullName, t.DisplayName())
		e.sink.EmitLiteral(id, ontology.TypeKind, typeKindString(t))
		if t.Module != nil {
			e.sink.EmitIRI(id, ontology.DefinedInAssembly, e.minter.Module(t.Module))
		}
		e.sink.EmitIRI(id, ontology.InNamespace, e.ensureNamespace(t.Namespace))
		if t.IsConstructed() {
			if err := e.emitGenericInstantiation(id, t); err != nil {
				return "", err
			}
		}
		return id, nil

	default:
		return "", fmt.Errorf("extract: unknown type shape %T", t)
	}
}

// ensureNamespace emits a namespace node once, ensuring the parent chain
// first. The global root gets the reserved name and no parent link.
func (e *Extractor) ensureNamespace(ns *symbols.Namespace) string {
	id := e.minter.Namespace(ns)
	if _, seen := e.visitedNamespaces[id]; seen {
		return id
	}
	e.visitedNamespaces[id] = struct{}{}

	e.sink.EmitIRI(id, ontology.RDFType, ontology.NamespaceNode)
	if ns == nil || ns.IsGlobal() {
		e.sink.EmitLiteral(id, ontology.Name, "_global_")
		return id
	}
	e.sink.EmitLiteral(id, ontology.Name, ns.Name)
	e.sink.EmitLiteral(id, ontology.FullName, ns.FullName())
	parent := e.ensureNamespace(ns.Parent)
	e.sink.EmitIRI(id, ontology.ParentNamespace, parent)
	return id
}

// extractTypeParameter emits the declaration node of a type parameter
// owned by ownerIRI (a type or a method member).
func (e *Extractor) extractTypeParameter(ownerIRI string, tp *symbols.TypeParameter) error {
	id := e.minter.TypeParameterDecl(ownerIRI, tp.Ordinal)
	e.sink.EmitIRI(id, ontology.RDFType, ontology.TypeParameter)
	e.sink.EmitLiteral(id, ontology.Name, tp.Name)
	e.sink.EmitInt(id, ontology.Ordinal, tp.Ordinal)
	e.sink.EmitLiteral(id, ontology.Variance, tp.Variance.String())
	e.sink.EmitBool(id, ontology.HasReferenceTypeConstraint, tp.HasReferenceTypeConstraint)
	e.sink.EmitBool(id, ontology.HasValueTypeConstraint, tp.HasValueTypeConstraint)
	e.sink.EmitBool(id, ontology.HasUnmanagedConstraint, tp.HasUnmanagedConstraint)
	e.sink.EmitBool(id, ontology.HasNotNullConstraint, tp.HasNotNullConstraint)
	e.sink.EmitBool(id, ontology.HasConstructorConstraint, tp.HasConstructorConstraint)
	e.sink.EmitIRI(ownerIRI, ontology.HasTypeParameter, id)
	e.sink.EmitIRI(id, ontology.TypeParameterOf, ownerIRI)
	for _, ct := range tp.ConstraintTypes {
		constraint, err := e.ensureType(ct)
		if err != nil {
			return err
		}
		e.sink.EmitIRI(id, ontology.ConstrainedToType, constraint)
	}
	return nil
}

// extractAttribute emits one attribute instance attached to target.
// Instances whose declaring type could not be resolved are skipped.
func (e *Extractor) extractAttribute(target any, targetIRI string, index int, a *symbols.Attribute) error {
	if a == nil || a.Type == nil {
		return nil
	}
	id, err := e.minter.Attribute(target, targetIRI, index)
	if err != nil {
		return err
	}
	e.sink.EmitIRI(id, ontology.RDFType, ontology.Attribute)
	e.sink.EmitIRI(targetIRI, ontology.HasAttribute, id)
	e.sink.EmitIRI(id, ontology.AttributeOf, targetIRI)
	attrType, err := e.ensureType(a.Type)
	if err != nil {
		return err
	}
	e.sink.EmitIRI(id, ontology.AttributeType, attrType)
	if args := symbols.FormatConstants(a.ConstructorArguments); args != "" {
		e.sink.EmitLiteral(id, ontology.ConstructorArguments, args)
	}
	if named := symbols.FormatNamedArguments(a.NamedArguments); named != "" {
		e.sink.EmitLiteral(id, ontology.NamedArguments, named)
	}
	return nil
}

// emitXRefs contributes throws and related-to edges from the auxiliary
// provider. References that fail to mint are dropped, not errors:
// absence of an edge is the contract for unresolvable documentation
// content.
func (e *Extractor) emitXRefs(sym any, subjectIRI string) {
	if e.XRefs == nil {
		return
	}
	for _, t := range e.XRefs.ExceptionTypes(sym) {
		id, err := e.ensureType(t)
		if err != nil {
			continue
		}
		e.sink.EmitIRI(subjectIRI, ontology.Throws, id)
	}
	for _, ref := range e.XRefs.SeeAlso(sym) {
		id, ok := e.referenceIRI(ref)
		if !ok {
			continue
		}
		e.sink.EmitIRI(subjectIRI, ontology.RelatedTo, id)
	}
}

// referenceIRI resolves a see-also reference to a type or member IRI.
func (e *Extractor) referenceIRI(ref any) (string, bool) {
	switch r := ref.(type) {
	case symbols.TypeRef:
		id, err := e.ensureType(r)
		return id, err == nil
	case symbols.Member:
		return e.memberIRI(r.DeclaredIn(), r)
	default:
		return "", false
	}
}
