package model

// NodeKind identifies the variant of a document node.
type NodeKind int

const (
	// KindNull is the JSON null literal.
	KindNull NodeKind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindSequence is a JSON array.
	KindSequence
	// KindMapping is a JSON object.
	KindMapping
)

func (k NodeKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}

	return "unknown"
}

// Node is one node of a parsed scene document. The concrete types are
// *Mapping, Sequence, String, Number, Bool and Null.
type Node interface {
	Kind() NodeKind
}

// Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value Node
}

// Mapping is an object whose entries keep their input order.
type Mapping struct {
	Entries []Entry
}

// Sequence is an ordered list of nodes.
type Sequence []Node

// String is a string scalar.
type String string

// Number is a numeric scalar kept as its original JSON lexeme so values
// round-trip without reformatting.
type Number string

// Bool is a boolean scalar.
type Bool bool

// Null is the null scalar.
type Null struct{}

// Kind implements Node.
func (*Mapping) Kind() NodeKind { return KindMapping }

// Kind implements Node.
func (Sequence) Kind() NodeKind { return KindSequence }

// Kind implements Node.
func (String) Kind() NodeKind { return KindString }

// Kind implements Node.
func (Number) Kind() NodeKind { return KindNumber }

// Kind implements Node.
func (Bool) Kind() NodeKind { return KindBool }

// Kind implements Node.
func (Null) Kind() NodeKind { return KindNull }

// NewMapping returns an empty mapping with room for n entries.
func NewMapping(n int) *Mapping {
	return &Mapping{Entries: make([]Entry, 0, n)}
}

// Len returns the number of entries.
func (mp *Mapping) Len() int {
	return len(mp.Entries)
}

// Get returns the value stored under key.
func (mp *Mapping) Get(key string) (Node, bool) {
	for _, e := range mp.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}

	return nil, false
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended.
func (mp *Mapping) Set(key string, value Node) {
	for i := range mp.Entries {
		if mp.Entries[i].Key == key {
			mp.Entries[i].Value = value
			return
		}
	}

	mp.Entries = append(mp.Entries, Entry{Key: key, Value: value})
}

// Keys returns the keys in document order.
func (mp *Mapping) Keys() []string {
	keys := make([]string, 0, len(mp.Entries))
	for _, e := range mp.Entries {
		keys = append(keys, e.Key)
	}

	return keys
}
