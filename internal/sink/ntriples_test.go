package sink

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randlee/roslyn-graph/internal/ontology"
)

func TestNTriples_Output(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := NewNTriples(&buf)

	s.AddPrefix("tg", ontology.TgNS)
	s.EmitIRI("http://g/a", ontology.RDFType, ontology.Class)
	s.EmitLiteral("http://g/a", ontology.Name, `say "hi"`)
	s.EmitBool("http://g/a", ontology.IsSealed, true)
	s.EmitInt("http://g/a", ontology.Ordinal, 3)
	s.EmitLong("http://g/a", ontology.ConstantValue, 255)
	require.NoError(t, s.Flush())

	want := strings.Join([]string{
		"# @prefix tg: <http://typegraph.example/ontology/> .",
		"<http://g/a> <" + ontology.RDFType + "> <" + ontology.Class + "> .",
		"<http://g/a> <" + ontology.Name + "> \"say \\\"hi\\\"\" .",
		"<http://g/a> <" + ontology.IsSealed + "> \"true\"^^<" + ontology.XSDBoolean + "> .",
		"<http://g/a> <" + ontology.Ordinal + "> \"3\"^^<" + ontology.XSDInteger + "> .",
		"<http://g/a> <" + ontology.ConstantValue + "> \"255\"^^<" + ontology.XSDLong + "> .",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, uint64(5), s.FactCount())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestNTriples_FlushSurfacesWriteError(t *testing.T) {
	t.Parallel()
	s := NewNTriples(failWriter{})
	s.EmitIRI("http://g/a", "http://g/p", "http://g/b")
	err := s.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
