// Package iri mints the stable node identifiers for every extracted
// entity. Minting is pure: identical symbols produce identical IRIs on
// every call, and no minting function touches the sink or the graph.
package iri

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/randlee/roslyn-graph/internal/symbols"
)

// ErrInvalidOwner is returned when a type-parameter IRI is requested for
// an owner that is neither a type nor a method.
var ErrInvalidOwner = errors.New("iri: type parameter owner must be a type or a method")

// ErrUnsupportedTarget is returned when an attribute IRI is requested for
// a target kind that cannot carry attributes.
var ErrUnsupportedTarget = errors.New("iri: unsupported attribute target")

// Minter derives hierarchical IRIs under a configured base.
type Minter struct {
	base string
}

// NewMinter creates a Minter rooted at base, with any trailing slash
// removed.
func NewMinter(base string) *Minter {
	return &Minter{base: strings.TrimRight(base, "/")}
}

// Base returns the configured base IRI.
func (m *Minter) Base() string { return m.base }

// escape percent-encodes every byte outside the unreserved set
// [A-Za-z0-9-_.~], byte by byte, so multi-byte UTF-8 sequences encode as
// one %XX triplet per byte.
func escape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9',
			b == '-', b == '_', b == '.', b == '~':
			sb.WriteByte(b)
		default:
			sb.WriteString(fmt.Sprintf("%%%02X", b))
		}
	}
	return sb.String()
}

// Module mints the assembly IRI: {base}/assembly/{name}/{version}.
func (m *Minter) Module(mod *symbols.Module) string {
	return m.base + "/assembly/" + escape(mod.Name) + "/" + escape(mod.Version)
}

// Namespace mints the namespace IRI. The global namespace maps to the
// reserved segment "_global_"; every other namespace uses its full dotted
// path, so the same namespace reached through different types mints one
// identifier.
func (m *Minter) Namespace(ns *symbols.Namespace) string {
	if ns == nil || ns.IsGlobal() {
		return m.base + "/namespace/_global_"
	}
	return m.base + "/namespace/" + escape(ns.FullName())
}

// Type mints the IRI for any type shape. Named types are keyed by owning
// module identity plus full metadata name; module-less built-ins fall into
// the reserved "_builtin_" segment. Arrays and pointers reuse the root
// element's module with the derived metadata name. Type parameters fold
// their owner into a synthetic "T:{owner}.{name}" metadata name, so T of
// A<T> and T of B<T> never collide.
func (m *Minter) Type(t symbols.TypeRef) (string, error) {
	switch t := t.(type) {
	case *symbols.NamedType:
		if t.Module == nil {
			return m.base + "/type/_builtin_/" + escape(t.Name), nil
		}
		return m.typeIRI(t.Module, t.MetadataName()), nil
	case *symbols.ArrayType:
		return m.derivedTypeIRI(t.Element, t.MetadataName())
	case *symbols.PointerType:
		return m.derivedTypeIRI(t.Pointee, t.MetadataName())
	case *symbols.TypeParameter:
		return m.typeParameterRef(t)
	default:
		return "", fmt.Errorf("iri: unknown type shape %T", t)
	}
}

func (m *Minter) typeIRI(mod *symbols.Module, metadataName string) string {
	return m.base + "/type/" + escape(mod.Name) + "/" + escape(mod.Version) + "/" + escape(metadataName)
}

// derivedTypeIRI keys an array or pointer shape by the module of its root
// element type, carrying the full derived metadata name.
func (m *Minter) derivedTypeIRI(element symbols.TypeRef, metadataName string) (string, error) {
	switch el := element.(type) {
	case *symbols.NamedType:
		if el.Module == nil {
			return m.base + "/type/_builtin_/" + escape(metadataName), nil
		}
		return m.typeIRI(el.Module, metadataName), nil
	case *symbols.ArrayType:
		return m.derivedTypeIRI(el.Element, metadataName)
	case *symbols.PointerType:
		return m.derivedTypeIRI(el.Pointee, metadataName)
	case *symbols.TypeParameter:
		mod, owner, err := typeParameterOwner(el)
		if err != nil {
			return "", err
		}
		synthetic := "T:" + owner + "." + el.Name
		// Splice the synthetic element name in front of the [] / * suffix.
		suffix := strings.TrimPrefix(metadataName, el.Name)
		if mod == nil {
			return m.base + "/type/_builtin_/" + escape(synthetic+suffix), nil
		}
		return m.typeIRI(mod, synthetic+suffix), nil
	default:
		return "", fmt.Errorf("iri: unknown element shape %T", element)
	}
}

// typeParameterRef mints the reference IRI of a type parameter: a type
// category IRI with the synthetic metadata name "T:{owner}.{name}".
func (m *Minter) typeParameterRef(tp *symbols.TypeParameter) (string, error) {
	mod, owner, err := typeParameterOwner(tp)
	if err != nil {
		return "", err
	}
	synthetic := "T:" + owner + "." + tp.Name
	if mod == nil {
		return m.base + "/type/_builtin_/" + escape(synthetic), nil
	}
	return m.typeIRI(mod, synthetic), nil
}

// typeParameterOwner resolves the declaring module and full owner name of
// a type parameter. Fails fast when the owner is neither a type nor a
// method: that is a caller bug, never guessed around.
func typeParameterOwner(tp *symbols.TypeParameter) (*symbols.Module, string, error) {
	switch owner := tp.Owner.(type) {
	case *symbols.NamedType:
		return owner.Module, owner.MetadataName(), nil
	case *symbols.Method:
		var mod *symbols.Module
		full := owner.Name
		if owner.DeclaringType != nil {
			mod = owner.DeclaringType.Module
			full = owner.DeclaringType.MetadataName() + "." + owner.Name
		}
		return mod, full, nil
	default:
		return nil, "", fmt.Errorf("%w: %T", ErrInvalidOwner, tp.Owner)
	}
}

// Member mints {type-id}/member/{name}{signature}. Methods carry a
// parenthesized parameter-type signature, indexers a bracketed one, and
// all other members none. By-reference parameters render a single "ref"
// keyword regardless of ref/out/in, so overloads that differ only in
// ref-kind mint identical IRIs; that collision is long-standing observed
// behavior and is kept deliberately.
func (m *Minter) Member(typeIRI string, mem symbols.Member) string {
	switch mem := mem.(type) {
	case *symbols.Method:
		return typeIRI + "/member/" + escape(mem.Name) + "(" + escape(signature(mem.Parameters)) + ")"
	case *symbols.Property:
		if mem.IsIndexer {
			return typeIRI + "/member/" + escape(mem.Name) + "[" + escape(signature(mem.Parameters)) + "]"
		}
		return typeIRI + "/member/" + escape(mem.Name)
	default:
		return typeIRI + "/member/" + escape(mem.MemberName())
	}
}

// signature renders the comma-joined parameter type list used to
// disambiguate overloads.
func signature(params []*symbols.Parameter) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		name := ""
		if p.Type != nil {
			name = p.Type.MetadataName()
		}
		if p.RefKind != symbols.RefNone {
			name = "ref " + name
		}
		parts[i] = name
	}
	return strings.Join(parts, ",")
}

// Parameter mints {member-id}/param/{ordinal}.
func (m *Minter) Parameter(memberIRI string, ordinal int) string {
	return memberIRI + "/param/" + strconv.Itoa(ordinal)
}

// TypeParameterDecl mints the declaration IRI of a type parameter,
// {owner-id}/typeparam/{ordinal}, where the owner IRI already encodes the
// declaring type or method.
func (m *Minter) TypeParameterDecl(ownerIRI string, ordinal int) string {
	return ownerIRI + "/typeparam/" + strconv.Itoa(ordinal)
}

// TypeArgument mints the reified type-argument node IRI,
// {type-id}/typearg/{index}.
func (m *Minter) TypeArgument(typeIRI string, index int) string {
	return typeIRI + "/typearg/" + strconv.Itoa(index)
}

// Attribute mints {target-id}/attr/{index} after validating that the
// target kind can carry attributes (module, type, method, property, field,
// event, or parameter).
func (m *Minter) Attribute(target any, targetIRI string, index int) (string, error) {
	switch target.(type) {
	case *symbols.Module, *symbols.NamedType, *symbols.Method,
		*symbols.Property, *symbols.Field, *symbols.Event, *symbols.Parameter:
		return targetIRI + "/attr/" + strconv.Itoa(index), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedTarget, target)
	}
}
