package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randlee/roslyn-graph/internal/ontology"
)

func TestTurtle_PrefixBlockAndCompaction(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := NewTurtle(&buf)
	s.AddPrefix("xsd", ontology.XSD)
	s.AddPrefix("rdf", ontology.RDF)
	s.AddPrefix("tg", ontology.TgNS)

	s.EmitIRI("http://g/a", ontology.RDFType, ontology.Class)
	s.EmitBool("http://g/a", ontology.IsSealed, true)
	s.EmitInt("http://g/a", ontology.Ordinal, 3)
	s.EmitLong("http://g/a", ontology.ConstantValue, 255)
	s.EmitLiteral("http://g/a", ontology.Name, "A")
	require.NoError(t, s.Flush())

	want := strings.Join([]string{
		"@prefix rdf: <" + ontology.RDF + "> .",
		"@prefix tg: <" + ontology.TgNS + "> .",
		"@prefix xsd: <" + ontology.XSD + "> .",
		"",
		"<http://g/a> rdf:type tg:Class .",
		"<http://g/a> tg:isSealed true .",
		"<http://g/a> tg:ordinal 3 .",
		"<http://g/a> <" + ontology.ConstantValue + "> \"255\"^^xsd:long .",
		"<http://g/a> tg:name \"A\" .",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, uint64(5), s.FactCount())
}

func TestTurtle_FallsBackToFullIRIForInvalidLocal(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := NewTurtle(&buf)
	s.AddPrefix("tg", ontology.TgNS)

	// The local part carries a percent escape, which prefix:local syntax
	// cannot express here.
	s.EmitIRI(ontology.TgNS+"List%601", ontology.TgNS+"name", ontology.TgNS+"Class")
	require.NoError(t, s.Flush())

	assert.Contains(t, buf.String(), "<"+ontology.TgNS+"List%601> tg:name tg:Class .\n")
}

func TestTurtle_PrefixAfterFirstTripleIgnored(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := NewTurtle(&buf)
	s.AddPrefix("tg", ontology.TgNS)
	s.EmitIRI("http://g/a", ontology.TgNS+"name", "http://g/b")
	s.AddPrefix("dt", ontology.DtNS)
	s.EmitIRI("http://g/a", ontology.DtNS+"culture", "http://g/b")
	require.NoError(t, s.Flush())

	got := buf.String()
	assert.NotContains(t, got, "@prefix dt:")
	assert.Contains(t, got, "<"+ontology.DtNS+"culture>")
}
