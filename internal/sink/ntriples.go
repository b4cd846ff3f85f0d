package sink

import (
	"bufio"
	"io"
	"strconv"

	"github.com/randlee/roslyn-graph/internal/ontology"
)

// NTriples streams one `<s> <p> <o> .` line per fact. Booleans and
// numbers render as typed literals; prefix declarations become comments,
// since the syntax has no prefix construct.
type NTriples struct {
	w     *bufio.Writer
	count uint64
	err   error
}

var _ TripleSink = (*NTriples)(nil)

// NewNTriples creates an N-Triples sink writing to w.
func NewNTriples(w io.Writer) *NTriples {
	return &NTriples{w: bufio.NewWriter(w)}
}

func (s *NTriples) write(line string) {
	if s.err != nil {
		return
	}
	if _, err := s.w.WriteString(line); err != nil {
		s.err = err
	}
}

func (s *NTriples) EmitIRI(subject, predicate, object string) {
	s.write("<" + subject + "> <" + predicate + "> <" + object + "> .\n")
	s.count++
}

func (s *NTriples) EmitLiteral(subject, predicate, value string) {
	s.write("<" + subject + "> <" + predicate + "> \"" + escapeLiteral(value) + "\" .\n")
	s.count++
}

func (s *NTriples) EmitTypedLiteral(subject, predicate, value, datatype string) {
	s.write("<" + subject + "> <" + predicate + "> \"" + escapeLiteral(value) + "\"^^<" + datatype + "> .\n")
	s.count++
}

func (s *NTriples) EmitBool(subject, predicate string, value bool) {
	s.EmitTypedLiteral(subject, predicate, strconv.FormatBool(value), ontology.XSDBoolean)
}

func (s *NTriples) EmitInt(subject, predicate string, value int) {
	s.EmitTypedLiteral(subject, predicate, strconv.Itoa(value), ontology.XSDInteger)
}

func (s *NTriples) EmitLong(subject, predicate string, value int64) {
	s.EmitTypedLiteral(subject, predicate, strconv.FormatInt(value, 10), ontology.XSDLong)
}

func (s *NTriples) AddPrefix(prefix, ns string) {
	s.write("# @prefix " + prefix + ": <" + ns + "> .\n")
}

func (s *NTriples) Flush() error {
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}

func (s *NTriples) FactCount() uint64 { return s.count }
