package sink

import (
	"bufio"
	"io"
	"sort"
	"strconv"

	"github.com/randlee/roslyn-graph/internal/ontology"
)

// Turtle streams facts in the prefixed syntax: a sorted @prefix block is
// written lazily before the first triple, after which IRIs compact to
// prefix:local wherever the local name stays within [A-Za-z0-9_].
// Booleans render as bare true/false tokens.
type Turtle struct {
	w        *bufio.Writer
	count    uint64
	err      error
	prefixes map[string]string
	started  bool
}

var _ TripleSink = (*Turtle)(nil)

// NewTurtle creates a Turtle sink writing to w.
func NewTurtle(w io.Writer) *Turtle {
	return &Turtle{w: bufio.NewWriter(w), prefixes: make(map[string]string)}
}

func (s *Turtle) write(line string) {
	if s.err != nil {
		return
	}
	if _, err := s.w.WriteString(line); err != nil {
		s.err = err
	}
}

// writeHeader emits the prefix block once, sorted for deterministic
// output.
func (s *Turtle) writeHeader() {
	if s.started {
		return
	}
	s.started = true
	names := make([]string, 0, len(s.prefixes))
	for name := range s.prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.write("@prefix " + name + ": <" + s.prefixes[name] + "> .\n")
	}
	if len(names) > 0 {
		s.write("\n")
	}
}

// compact shortens an IRI to prefix:local against the longest matching
// registered namespace, falling back to the bracketed full form when the
// local part would need escaping.
func (s *Turtle) compact(iri string) string {
	bestPrefix, bestNS := "", ""
	for prefix, ns := range s.prefixes {
		if len(ns) > len(bestNS) && len(iri) > len(ns) && iri[:len(ns)] == ns {
			bestPrefix, bestNS = prefix, ns
		}
	}
	if bestNS != "" {
		local := iri[len(bestNS):]
		if validLocal(local) {
			return bestPrefix + ":" + local
		}
	}
	return "<" + iri + ">"
}

func validLocal(local string) bool {
	if local == "" {
		return false
	}
	for i := 0; i < len(local); i++ {
		c := local[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' {
			continue
		}
		return false
	}
	return true
}

func (s *Turtle) emit(subject, predicate, object string) {
	s.writeHeader()
	s.write(s.compact(subject) + " " + s.compact(predicate) + " " + object + " .\n")
	s.count++
}

func (s *Turtle) EmitIRI(subject, predicate, object string) {
	s.emit(subject, predicate, s.compact(object))
}

func (s *Turtle) EmitLiteral(subject, predicate, value string) {
	s.emit(subject, predicate, "\""+escapeLiteral(value)+"\"")
}

func (s *Turtle) EmitTypedLiteral(subject, predicate, value, datatype string) {
	s.emit(subject, predicate, "\""+escapeLiteral(value)+"\"^^"+s.compact(datatype))
}

func (s *Turtle) EmitBool(subject, predicate string, value bool) {
	s.emit(subject, predicate, strconv.FormatBool(value))
}

func (s *Turtle) EmitInt(subject, predicate string, value int) {
	s.emit(subject, predicate, strconv.Itoa(value))
}

// EmitLong keeps the explicit xsd:long datatype; a bare numeric token
// would downgrade to xsd:integer under Turtle parsing rules.
func (s *Turtle) EmitLong(subject, predicate string, value int64) {
	s.EmitTypedLiteral(subject, predicate, strconv.FormatInt(value, 10), ontology.XSDLong)
}

// AddPrefix registers a prefix. Registrations after the first emitted
// triple are ignored, since the header is already on the wire.
func (s *Turtle) AddPrefix(prefix, ns string) {
	if s.started {
		return
	}
	s.prefixes[prefix] = ns
}

func (s *Turtle) Flush() error {
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}

func (s *Turtle) FactCount() uint64 { return s.count }
