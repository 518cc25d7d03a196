package contentline

import (
	"strings"
	"unicode"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// ContentLine is a tokenized content line. It is created by Parse or New and
// is read-only thereafter.
type ContentLine struct {
	name   string      // property name, upper case
	value  string      // raw value, still escaped
	params *Parameters // may be nil
}

// New creates a content line from its parts. The property name is trimmed and
// converted to upper case. It must not be empty and must not contain
// whitespace. params is copied and may be nil.
func New(name, value string, params *Parameters) (ContentLine, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if err := checkName(name); err != nil {
		return ContentLine{}, err
	}
	return ContentLine{name: name, value: value, params: params.Clone()}, nil
}

func checkName(name string) error {
	if name == "" {
		return ErrMissingPropertyName
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return ErrInvalidPropertyName
	}
	return nil
}

// Name returns the upper case property name.
func (cl ContentLine) Name() string {
	return cl.name
}

// Value returns the raw property value, exactly as it appeared after the
// separating colon.
func (cl ContentLine) Value() string {
	return cl.value
}

// Param returns the value of a parameter. Parameter names are matched
// case-insensitively.
func (cl ContentLine) Param(name string) (string, bool) {
	return cl.params.Get(name)
}

// ParamNames returns the names of the parameters in order of appearance.
func (cl ContentLine) ParamNames() []string {
	return cl.params.Names()
}

// Parameters returns a copy of the parameters of cl.
func (cl ContentLine) Parameters() *Parameters {
	return cl.params.Clone()
}

// Equal reports whether two content lines have identical names, values
// and parameters, including the order of the parameters.
func (cl ContentLine) Equal(other ContentLine) bool {
	if cl.name != other.name || cl.value != other.value {
		return false
	}
	if cl.params.Len() != other.params.Len() {
		return false
	}
	n1, n2 := cl.params.Names(), other.params.Names()
	for i := range n1 {
		if n1[i] != n2[i] {
			return false
		}
		v1, _ := cl.params.Get(n1[i])
		v2, _ := other.params.Get(n2[i])
		if v1 != v2 {
			return false
		}
	}
	return true
}

// String renders cl in wire syntax (unfolded). See Format.
func (cl ContentLine) String() string {
	return render(cl)
}

// --- Parameters ------------------------------------------------------------

// Parameters is an ordered mapping of parameter names to parameter values.
// Names are normalized to upper case on insertion, which makes them unique
// case-insensitively. Iteration follows insertion order. Setting an existing
// name replaces its value but keeps its position.
//
// The zero value is an empty set of parameters, ready to use. A nil
// *Parameters may be read from, but not written to.
type Parameters struct {
	m *linkedhashmap.Map
}

// NewParameters creates an empty set of parameters.
func NewParameters() *Parameters {
	return &Parameters{m: linkedhashmap.New()}
}

// Set inserts or replaces a parameter.
func (p *Parameters) Set(name, value string) {
	if p.m == nil {
		p.m = linkedhashmap.New()
	}
	p.m.Put(strings.ToUpper(name), value)
}

// Get returns the value for a parameter name, matched case-insensitively.
func (p *Parameters) Get(name string) (string, bool) {
	if p == nil || p.m == nil {
		return "", false
	}
	v, ok := p.m.Get(strings.ToUpper(name))
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	if p == nil || p.m == nil {
		return 0
	}
	return p.m.Size()
}

// Names returns the parameter names in insertion order.
func (p *Parameters) Names() []string {
	if p.Len() == 0 {
		return nil
	}
	names := make([]string, 0, p.m.Size())
	for _, k := range p.m.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// Each calls f for every parameter, in insertion order.
func (p *Parameters) Each(f func(name, value string)) {
	if p.Len() == 0 {
		return
	}
	it := p.m.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().(string))
	}
}

// Clone returns a deep copy of p. Cloning nil results in nil.
func (p *Parameters) Clone() *Parameters {
	if p == nil {
		return nil
	}
	c := NewParameters()
	p.Each(c.Set)
	return c
}
