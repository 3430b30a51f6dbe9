package status

import "slices"

// Definition is one entry of a status vocabulary.
//
// Next lists the order statuses an order status may move to. It is only
// meaningful on the order axis and is empty for terminal statuses.
type Definition struct {
	Code         string
	Name         string
	Badge        string
	IsDefault    bool
	IsCancelable bool
	Terminal     bool
	Next         []string
}

// CanMoveTo reports whether code is listed as an allowed forward transition.
func (d Definition) CanMoveTo(code string) bool {
	return slices.Contains(d.Next, code)
}

func (d Definition) clone() Definition {
	d.Next = slices.Clone(d.Next)
	return d
}

// Vocabulary is the frozen set of definitions for one axis, kept in load order.
type Vocabulary struct {
	axis        Axis
	definitions []Definition
	index       map[string]int
	defaultCode string
}

func newVocabulary(axis Axis, definitions []Definition) *Vocabulary {
	v := &Vocabulary{
		axis:        axis,
		definitions: definitions,
		index:       make(map[string]int, len(definitions)),
	}
	for i, d := range definitions {
		v.index[d.Code] = i
		if d.IsDefault {
			v.defaultCode = d.Code
		}
	}
	return v
}

// Axis returns the axis the vocabulary belongs to.
func (v *Vocabulary) Axis() Axis {
	return v.axis
}

// Get returns a copy of the definition for code.
func (v *Vocabulary) Get(code string) (Definition, bool) {
	i, ok := v.index[code]
	if !ok {
		return Definition{}, false
	}
	return v.definitions[i].clone(), true
}

// Has reports whether code is defined.
func (v *Vocabulary) Has(code string) bool {
	_, ok := v.index[code]
	return ok
}

// Default returns the single definition flagged as default.
func (v *Vocabulary) Default() Definition {
	d, _ := v.Get(v.defaultCode)
	return d
}

// Definitions returns copies of all definitions in load order.
func (v *Vocabulary) Definitions() []Definition {
	out := make([]Definition, len(v.definitions))
	for i, d := range v.definitions {
		out[i] = d.clone()
	}
	return out
}

// Codes returns the defined codes in load order.
func (v *Vocabulary) Codes() []string {
	out := make([]string, len(v.definitions))
	for i, d := range v.definitions {
		out[i] = d.Code
	}
	return out
}
