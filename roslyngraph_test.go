package roslyngraph

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
	"module": {"name": "Widgets", "version": "1.2.0"},
	"types": {
		"t:Widgets.BoomException": {
			"name": "BoomException", "namespace": "Widgets",
			"kind": "class", "accessibility": "public"
		},
		"t:Widgets.Widget": {
			"name": "Widget", "namespace": "Widgets",
			"kind": "class", "accessibility": "public",
			"doc": "<exception cref=\"T:Widgets.BoomException\"/>",
			"members": [
				{"name": "Spin", "kind": "method", "accessibility": "public", "returnsVoid": true},
				{"name": "seed", "kind": "field", "accessibility": "private"}
			]
		}
	}
}`

func TestExtract_EndToEnd(t *testing.T) {
	t.Parallel()
	mod, err := ParseModule([]byte(sampleDoc))
	require.NoError(t, err)

	rec := NewRecorder()
	stats, err := Extract(mod, rec,
		WithBaseIRI("http://g.example"),
		WithCrossReferencer(NewDocXRefs(mod)),
		WithLogger(log.New(io.Discard)),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Types)
	assert.Equal(t, rec.FactCount(), stats.Facts)

	widget := "http://g.example/type/Widgets/1.2.0/Widgets.Widget"
	boom := "http://g.example/type/Widgets/1.2.0/Widgets.BoomException"
	assert.True(t, rec.Has(widget, "http://typegraph.example/ontology/hasMember", widget+"/member/Spin()"))
	assert.True(t, rec.Has(widget, "http://typegraph.example/ontology/throws", boom))

	// The private field stays out without WithIncludePrivate.
	assert.NotContains(t, rec.Objects(widget, "http://typegraph.example/ontology/hasMember"), widget+"/member/seed")
}

func TestExtract_OptionsChangePolicy(t *testing.T) {
	t.Parallel()
	mod, err := ParseModule([]byte(sampleDoc))
	require.NoError(t, err)

	rec := NewRecorder()
	_, err = Extract(mod, rec,
		WithBaseIRI("http://g.example"),
		WithIncludePrivate(true),
		WithLogger(log.New(io.Discard)),
	)
	require.NoError(t, err)

	widget := "http://g.example/type/Widgets/1.2.0/Widgets.Widget"
	assert.Contains(t, rec.Objects(widget, "http://typegraph.example/ontology/hasMember"), widget+"/member/seed")
}

func TestExtract_TurtleSerialization(t *testing.T) {
	t.Parallel()
	mod, err := ParseModule([]byte(sampleDoc))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = Extract(mod, NewTurtle(&buf),
		WithBaseIRI("http://g.example"),
		WithLogger(log.New(io.Discard)),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "@prefix "))
	assert.Contains(t, out, "rdf:type tg:Class")
	assert.Contains(t, out, `tg:name "Widget"`)
}
