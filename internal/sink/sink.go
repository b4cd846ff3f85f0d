// Package sink defines the triple sink contract the extractor emits
// through, and its serialization backends: streaming N-Triples, prefixed
// Turtle, an in-memory recorder, and a SQLite bulk-load store.
package sink

// TripleSink accepts typed emit calls for one extraction run. Emit methods
// do not return errors; implementations latch the first write failure and
// surface it from Flush. FactCount is the running total of emit calls.
type TripleSink interface {
	// EmitIRI emits a triple whose object is another node.
	EmitIRI(subject, predicate, object string)
	// EmitLiteral emits a plain string literal object.
	EmitLiteral(subject, predicate, value string)
	// EmitTypedLiteral emits a literal object with an explicit datatype.
	EmitTypedLiteral(subject, predicate, value, datatype string)
	// EmitBool emits an xsd:boolean object. Concrete syntaxes choose
	// between a bare token and a typed literal.
	EmitBool(subject, predicate string, value bool)
	// EmitInt emits an xsd:integer object.
	EmitInt(subject, predicate string, value int)
	// EmitLong emits an xsd:long object.
	EmitLong(subject, predicate string, value int64)
	// AddPrefix declares a namespace prefix. Syntaxes without prefix
	// support may render it as a comment or ignore it.
	AddPrefix(prefix, ns string)
	// Flush writes buffered output and reports the first emit error, if
	// any.
	Flush() error
	// FactCount is the number of facts emitted so far.
	FactCount() uint64
}

// escapeLiteral escapes a literal value for the line-oriented syntaxes:
// backslash, double quote, newline, carriage return, and tab get two-char
// escapes; any other control character below 0x20 becomes \uXXXX.
func escapeLiteral(s string) string {
	needsEscape := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '\\' || c == '"' || c < 0x20 {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}
	var out []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			out = append(out, '\\', '\\')
		case c == '"':
			out = append(out, '\\', '"')
		case c == '\n':
			out = append(out, '\\', 'n')
		case c == '\r':
			out = append(out, '\\', 'r')
		case c == '\t':
			out = append(out, '\\', 't')
		case c < 0x20:
			out = append(out, []byte(formatControl(c))...)
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

const hexUpper = "0123456789ABCDEF"

func formatControl(c byte) string {
	return "\\u00" + string(hexUpper[c>>4]) + string(hexUpper[c&0xF])
}
