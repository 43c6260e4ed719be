package values

// Shape is an identity tag for an object's property layout.
//
// Every Object carries a shape pointer. Structural mutation (defining or
// deleting an own property, creating one through Set, or replacing the
// prototype) moves the object to a fresh shape, so "does this object still
// have the layout its constructor installed" is a single pointer
// comparison. Plain writes to an existing writable data property do not
// change the shape.
//
// Constructors that want a recognizable layout install their initial
// properties and then stamp a shared shape with Object.SetShape; see the
// canonical-receiver fast paths in the root package.
type Shape struct {
	parent *Shape // shape this one transitioned from; nil for a root shape
}

// NewShape returns a fresh root shape.
func NewShape() *Shape { return &Shape{} }

// transition returns a new shape derived from s.
func (s *Shape) transition() *Shape { return &Shape{parent: s} }
