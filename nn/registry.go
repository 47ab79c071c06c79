package nn

import (
	"strings"

	"github.com/pkg/errors"
)

// functionNames is the single name table for catalog functions, indexed by Function.
// Rules, reports and ablation summaries all print through it.
var functionNames = [numFunctions]string{
	FunctionAnd:         "AND",
	FunctionOr:          "OR",
	FunctionXor:         "XOR",
	FunctionNand:        "NAND",
	FunctionNor:         "NOR",
	FunctionXnor:        "XNOR",
	FunctionAndNot:      "AND NOT",
	FunctionNotAnd:      "NOT AND",
	FunctionImplication: "IMPLICATION",
	FunctionEquivalence: "EQUIVALENCE",
}

// inputName is printed for leaf units.
const inputName = "INPUT"

// functionRegistry maps normalized names back to functions.
var functionRegistry = func() map[string]Function {
	m := make(map[string]Function, numFunctions)
	for f, name := range functionNames {
		m[name] = Function(f)
	}
	return m
}()

// String returns the catalog name of the function.
func (f Function) String() string {
	if f.Valid() {
		return functionNames[f]
	}
	if f == FunctionNone {
		return inputName
	}
	return "UNKNOWN"
}

// ParseFunction returns the function with the given name. Matching ignores case,
// and '-' or '_' may stand in for the space of two-word names ("and-not").
func ParseFunction(name string) (Function, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.NewReplacer("-", " ", "_", " ").Replace(key)
	key = strings.Join(strings.Fields(key), " ")
	if f, ok := functionRegistry[key]; ok {
		return f, nil
	}
	return FunctionNone, errors.Errorf("unknown logical function %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (f Function) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, errors.Errorf("cannot marshal logical function %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Function) UnmarshalText(text []byte) error {
	parsed, err := ParseFunction(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Catalog is an ordered set of functions used to score unit pairs. Order decides
// the order of tied units within a pair; the functions keep their own identity, so
// a reduced catalog still reports the right names.
type Catalog []Function

// DefaultCatalog returns all functions in their canonical order.
func DefaultCatalog() Catalog {
	c := make(Catalog, numFunctions)
	for i := range c {
		c[i] = Function(i)
	}
	return c
}

// Without returns a copy of the catalog with the given functions removed.
func (c Catalog) Without(excluded ...Function) Catalog {
	out := make(Catalog, 0, len(c))
	for _, f := range c {
		skip := false
		for _, e := range excluded {
			if f == e {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, f)
		}
	}
	return out
}

// Contains reports whether f is part of the catalog.
func (c Catalog) Contains(f Function) bool {
	for _, each := range c {
		if each == f {
			return true
		}
	}
	return false
}

// Names returns the catalog names in order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, f := range c {
		names[i] = f.String()
	}
	return names
}

// Validate checks that the catalog is non-empty and holds distinct, known functions.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[Function]bool, len(c))
	for _, f := range c {
		if !f.Valid() {
			return errors.Errorf("catalog contains unknown logical function %d", int(f))
		}
		if seen[f] {
			return errors.Errorf("catalog lists %s more than once", f)
		}
		seen[f] = true
	}
	return nil
}
