package sink

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "graph.db"), "http://g.example")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_RegistersRun(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NotEmpty(t, s.RunID())

	var baseIRI string
	err := s.DB().QueryRow("SELECT base_iri FROM runs WHERE id = ?", s.RunID()).Scan(&baseIRI)
	require.NoError(t, err)
	assert.Equal(t, "http://g.example", baseIRI)
}

func TestStore_PersistsFactsAndPrefixes(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	s.AddPrefix("tg", "http://typegraph.example/ontology/")
	s.EmitIRI("s", "p", "o")
	s.EmitLiteral("s", "p", "v")
	s.EmitTypedLiteral("s", "p", "42", "http://www.w3.org/2001/XMLSchema#long")
	s.EmitBool("s", "p", true)
	s.EmitInt("s", "p", 1)
	s.EmitLong("s", "p", 2)
	require.NoError(t, s.Flush())
	assert.Equal(t, uint64(6), s.FactCount())

	var n int
	err := s.DB().QueryRow("SELECT COUNT(*) FROM facts WHERE run_id = ?", s.RunID()).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	var kind string
	var datatype *string
	err = s.DB().QueryRow(
		"SELECT object_kind, datatype FROM facts WHERE run_id = ? AND object = '42'", s.RunID(),
	).Scan(&kind, &datatype)
	require.NoError(t, err)
	assert.Equal(t, string(FactTyped), kind)
	require.NotNil(t, datatype)
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema#long", *datatype)

	var ns string
	err = s.DB().QueryRow(
		"SELECT namespace FROM prefixes WHERE run_id = ? AND prefix = 'tg'", s.RunID(),
	).Scan(&ns)
	require.NoError(t, err)
	assert.Equal(t, "http://typegraph.example/ontology/", ns)
}

func TestStore_CommitsAcrossBatches(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	total := batchSize*2 + 100
	for i := 0; i < total; i++ {
		s.EmitInt("s", "p", i)
	}
	require.NoError(t, s.Flush())

	var n int
	err := s.DB().QueryRow("SELECT COUNT(*) FROM facts WHERE run_id = ?", s.RunID()).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, total, n)
}

func TestStore_MultipleRunsShareDatabase(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "graph.db")

	first, err := NewStore(dbPath, "http://g.example/one")
	require.NoError(t, err)
	first.EmitIRI("s", "p", "o")
	require.NoError(t, first.Flush())
	require.NoError(t, first.Close())

	second, err := NewStore(dbPath, "http://g.example/two")
	require.NoError(t, err)
	defer second.Close()
	second.EmitIRI("s", "p", "o")
	require.NoError(t, second.Flush())
	assert.NotEqual(t, first.RunID(), second.RunID())

	var runs int
	err = second.DB().QueryRow("SELECT COUNT(*) FROM runs").Scan(&runs)
	require.NoError(t, err)
	assert.Equal(t, 2, runs)
}
