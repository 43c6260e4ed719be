package values

// Symbol is a unique property key. Two symbols are the same key only if
// they are the same *Symbol pointer; the description is diagnostic.
type Symbol struct {
	description string
}

// NewSymbol creates a fresh symbol with the given description.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

// Kind implements Value.
func (*Symbol) Kind() Kind { return KindSymbol }

// Description returns the symbol's diagnostic description.
func (s *Symbol) Description() string { return s.description }

func (s *Symbol) String() string { return "Symbol(" + s.description + ")" }

// SymbolMatch is the well-known match-capability symbol. An object with a
// defined property under this key opts in or out of being treated as
// regexp-like, regardless of its actual matching behavior.
var SymbolMatch = NewSymbol("Symbol.match")
