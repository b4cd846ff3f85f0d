package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RecordsKinds(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.EmitIRI("s", "p", "o")
	r.EmitLiteral("s", "p", "v")
	r.EmitTypedLiteral("s", "p", "v", "dt")
	r.EmitBool("s", "p", false)
	r.EmitInt("s", "p", 7)
	r.EmitLong("s", "p", 9)
	require.NoError(t, r.Flush())

	require.Equal(t, uint64(6), r.FactCount())
	kinds := make([]FactKind, len(r.Facts))
	for i, f := range r.Facts {
		kinds[i] = f.Kind
	}
	assert.Equal(t, []FactKind{FactIRI, FactLiteral, FactTyped, FactBool, FactInt, FactLong}, kinds)
	assert.Equal(t, "dt", r.Facts[2].Datatype)
	assert.Equal(t, "false", r.Facts[3].Object)
	assert.Equal(t, "7", r.Facts[4].Object)
	assert.Equal(t, "9", r.Facts[5].Object)
}

func TestRecorder_Queries(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.EmitIRI("a", "p", "x")
	r.EmitIRI("a", "p", "y")
	r.EmitLiteral("a", "p", "lit")
	r.EmitIRI("b", "q", "z")
	r.AddPrefix("tg", "http://typegraph.example/ontology/")

	assert.True(t, r.Has("a", "p", "x"))
	assert.False(t, r.Has("a", "p", "lit"), "Has matches IRI objects only")
	assert.Equal(t, []string{"x", "y", "lit"}, r.Objects("a", "p"))
	assert.Equal(t, []string{"a", "b"}, r.Subjects())
	assert.Equal(t, "http://typegraph.example/ontology/", r.Prefixes["tg"])
}
