// Package docxml derives auxiliary graph edges from documentation-comment
// XML: exception elements become throws edges and seealso elements become
// related-to edges. Crefs that resolve to nothing and malformed XML are
// both treated as "no references"; documentation content never fails an
// extraction.
package docxml

import (
	"encoding/xml"
	"strings"

	"github.com/randlee/roslyn-graph/internal/symbols"
)

// Provider resolves doc-comment crefs against one module's symbol index.
// It satisfies the extractor's cross-referencer contract.
type Provider struct {
	types   map[string]*symbols.NamedType
	members map[string]symbols.Member
}

// NewProvider indexes every declared type and member of mod by its
// doc-comment ID name.
func NewProvider(mod *symbols.Module) *Provider {
	p := &Provider{
		types:   make(map[string]*symbols.NamedType),
		members: make(map[string]symbols.Member),
	}
	for _, t := range mod.DeclaredTypes() {
		name := t.MetadataName()
		p.types[name] = t
		for _, mem := range t.Members {
			key := name + "." + mem.MemberName()
			// First declaration wins for overload groups; crefs without a
			// parameter list cannot pick one anyway.
			if _, exists := p.members[key]; !exists {
				p.members[key] = mem
			}
		}
	}
	return p
}

// ExceptionTypes returns the types named by exception elements in the
// symbol's documentation.
func (p *Provider) ExceptionTypes(sym any) []symbols.TypeRef {
	var out []symbols.TypeRef
	for _, cref := range crefs(docOf(sym), "exception") {
		if t := p.resolveType(cref); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// SeeAlso returns the symbols named by seealso elements: types or
// members, in source order.
func (p *Provider) SeeAlso(sym any) []any {
	var out []any
	for _, cref := range crefs(docOf(sym), "seealso") {
		if ref := p.resolve(cref); ref != nil {
			out = append(out, ref)
		}
	}
	return out
}

func docOf(sym any) string {
	switch s := sym.(type) {
	case *symbols.NamedType:
		return s.Doc
	case symbols.Member:
		return s.Documentation()
	default:
		return ""
	}
}

// crefs scans a documentation blob for cref attributes on the named
// element. Blobs are fragments, so scanning runs token by token and stops
// quietly at the first decoding error.
func crefs(doc, element string) []string {
	if doc == "" || !strings.Contains(doc, "<") {
		return nil
	}
	dec := xml.NewDecoder(strings.NewReader(doc))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	var out []string
	for {
		tok, err := dec.Token()
		if err != nil {
			return out
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != element {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Local == "cref" && attr.Value != "" {
				out = append(out, attr.Value)
			}
		}
	}
}

// resolveType resolves a cref to a declared type, accepting the T: prefix
// or a bare metadata name.
func (p *Provider) resolveType(cref string) *symbols.NamedType {
	name := strings.TrimPrefix(cref, "T:")
	return p.types[name]
}

// resolve maps a cref to a type or member. Member crefs (M:, P:, F:, E:)
// drop any parenthesized parameter list before lookup.
func (p *Provider) resolve(cref string) any {
	if rest, ok := strings.CutPrefix(cref, "T:"); ok {
		if t := p.types[rest]; t != nil {
			return t
		}
		return nil
	}
	name := cref
	for _, prefix := range []string{"M:", "P:", "F:", "E:"} {
		if rest, ok := strings.CutPrefix(cref, prefix); ok {
			name = rest
			break
		}
	}
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	if mem, ok := p.members[name]; ok {
		return mem
	}
	if t := p.types[name]; t != nil {
		return t
	}
	return nil
}
