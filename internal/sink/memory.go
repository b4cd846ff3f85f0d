package sink

import "strconv"

// FactKind discriminates the object slot of a recorded fact.
type FactKind string

const (
	FactIRI     FactKind = "iri"
	FactLiteral FactKind = "literal"
	FactTyped   FactKind = "typed"
	FactBool    FactKind = "bool"
	FactInt     FactKind = "int"
	FactLong    FactKind = "long"
)

// Fact is one recorded triple.
type Fact struct {
	Subject   string
	Predicate string
	Object    string
	Kind      FactKind
	Datatype  string
}

// Recorder collects facts and prefixes in memory, in emission order.
// It is the sink of choice for tests and for callers that post-process
// the graph instead of serializing it.
type Recorder struct {
	Facts    []Fact
	Prefixes map[string]string
}

var _ TripleSink = (*Recorder)(nil)

// NewRecorder creates an empty in-memory sink.
func NewRecorder() *Recorder {
	return &Recorder{Prefixes: make(map[string]string)}
}

func (r *Recorder) EmitIRI(subject, predicate, object string) {
	r.Facts = append(r.Facts, Fact{Subject: subject, Predicate: predicate, Object: object, Kind: FactIRI})
}

func (r *Recorder) EmitLiteral(subject, predicate, value string) {
	r.Facts = append(r.Facts, Fact{Subject: subject, Predicate: predicate, Object: value, Kind: FactLiteral})
}

func (r *Recorder) EmitTypedLiteral(subject, predicate, value, datatype string) {
	r.Facts = append(r.Facts, Fact{Subject: subject, Predicate: predicate, Object: value, Kind: FactTyped, Datatype: datatype})
}

func (r *Recorder) EmitBool(subject, predicate string, value bool) {
	obj := "false"
	if value {
		obj = "true"
	}
	r.Facts = append(r.Facts, Fact{Subject: subject, Predicate: predicate, Object: obj, Kind: FactBool})
}

func (r *Recorder) EmitInt(subject, predicate string, value int) {
	r.Facts = append(r.Facts, Fact{Subject: subject, Predicate: predicate, Object: strconv.Itoa(value), Kind: FactInt})
}

func (r *Recorder) EmitLong(subject, predicate string, value int64) {
	r.Facts = append(r.Facts, Fact{Subject: subject, Predicate: predicate, Object: strconv.FormatInt(value, 10), Kind: FactLong})
}

func (r *Recorder) AddPrefix(prefix, ns string) {
	r.Prefixes[prefix] = ns
}

func (r *Recorder) Flush() error { return nil }

func (r *Recorder) FactCount() uint64 { return uint64(len(r.Facts)) }

// Has reports whether an IRI-object fact with the given slots was emitted.
func (r *Recorder) Has(subject, predicate, object string) bool {
	for _, f := range r.Facts {
		if f.Kind == FactIRI && f.Subject == subject && f.Predicate == predicate && f.Object == object {
			return true
		}
	}
	return false
}

// Objects returns the objects of every fact with the given subject and
// predicate, in emission order, regardless of kind.
func (r *Recorder) Objects(subject, predicate string) []string {
	var out []string
	for _, f := range r.Facts {
		if f.Subject == subject && f.Predicate == predicate {
			out = append(out, f.Object)
		}
	}
	return out
}

// Subjects returns the distinct subjects seen, in first-emission order.
func (r *Recorder) Subjects() []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range r.Facts {
		if !seen[f.Subject] {
			seen[f.Subject] = true
			out = append(out, f.Subject)
		}
	}
	return out
}
