package values

// PropertyKey is a string or symbol property name. The zero value is the
// empty string key.
type PropertyKey struct {
	name string
	sym  *Symbol
}

// StringKey returns the key for an ordinary string-named property.
func StringKey(name string) PropertyKey { return PropertyKey{name: name} }

// SymbolKey returns the key for a symbol-named property.
func SymbolKey(sym *Symbol) PropertyKey { return PropertyKey{sym: sym} }

func (k PropertyKey) String() string {
	if k.sym != nil {
		return k.sym.String()
	}
	return k.name
}

// Callable is the signature of invocable objects. The this argument is the
// receiver the call was dispatched on. Callables may run arbitrary user
// code and fail.
type Callable func(this Value, args ...Value) (Value, error)

// property is a single own property: either a data property (value,
// writable) or an accessor property (getter, setter).
type property struct {
	value    Value
	getter   *Object
	setter   *Object
	accessor bool
	writable bool
}

// Object is a property-bearing value: a table of data and accessor
// properties, a prototype chain, a shape tag, and an optional call
// behavior. Objects are not safe for concurrent use.
type Object struct {
	shape     *Shape
	prototype *Object
	props     map[PropertyKey]*property
	call      Callable
	name      string
}

// NewObject creates an empty object with the given prototype (nil for
// none).
func NewObject(proto *Object) *Object {
	return &Object{
		shape:     NewShape(),
		prototype: proto,
		props:     make(map[PropertyKey]*property),
	}
}

// NewFunction creates a callable object. The name is used in error
// messages only; identity is the *Object pointer.
func NewFunction(name string, call Callable) *Object {
	o := NewObject(nil)
	o.call = call
	o.name = name
	return o
}

// Kind implements Value.
func (o *Object) Kind() Kind { return KindObject }

// Self returns the object itself. Types embedding *Object (canonical
// engine receivers) inherit this, which is how AsObject reaches the
// property table behind any object-like value.
func (o *Object) Self() *Object { return o }

// Shape returns the object's current shape tag.
func (o *Object) Shape() *Shape { return o.shape }

// SetShape stamps a shape on the object. Intended for constructors that
// install their initial properties and then mark the result with a shared,
// recognizable shape.
func (o *Object) SetShape(s *Shape) { o.shape = s }

// Prototype returns the object's prototype, or nil.
func (o *Object) Prototype() *Object { return o.prototype }

// SetPrototype replaces the prototype. This is structural mutation and
// transitions the shape.
func (o *Object) SetPrototype(p *Object) {
	o.prototype = p
	o.shape = o.shape.transition()
}

// Name returns the function name for callable objects, "" otherwise.
func (o *Object) Name() string { return o.name }

// ObjectValue is implemented by *Object and by any type that embeds it.
type ObjectValue interface {
	Value
	Self() *Object
}

// AsObject returns the property table behind v, if v is object-like.
func AsObject(v Value) (*Object, bool) {
	if ov, ok := v.(ObjectValue); ok {
		return ov.Self(), true
	}
	return nil, false
}

// AsCallable returns the object behind v if v is an invocable object.
func AsCallable(v Value) (*Object, bool) {
	o, ok := AsObject(v)
	if !ok || o.call == nil {
		return nil, false
	}
	return o, true
}

// Call invokes fn with the given this value and arguments.
func Call(fn *Object, this Value, args ...Value) (Value, error) {
	if fn == nil || fn.call == nil {
		return nil, NewTypeError("value is not a function")
	}
	res, err := fn.call(this, args...)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = Undefined
	}
	return res, nil
}

// Get reads a property, walking the prototype chain. A getter found
// anywhere on the chain is invoked with o as the receiver; a missing
// property yields Undefined. The error is non-nil only when a getter
// fails.
func (o *Object) Get(key PropertyKey) (Value, error) {
	for cur := o; cur != nil; cur = cur.prototype {
		p, ok := cur.props[key]
		if !ok {
			continue
		}
		if p.accessor {
			if p.getter == nil {
				return Undefined, nil
			}
			return Call(p.getter, o)
		}
		return p.value, nil
	}
	return Undefined, nil
}

// Set writes a property with ECMAScript ordinary-set semantics. An
// accessor anywhere on the chain routes through its setter (an error when
// there is none and strict is true); a non-writable data property rejects
// the write (an error under strict, silently ignored otherwise); otherwise
// the value lands as an own data property, transitioning the shape if the
// property is new.
func (o *Object) Set(key PropertyKey, v Value, strict bool) error {
	for cur := o; cur != nil; cur = cur.prototype {
		p, ok := cur.props[key]
		if !ok {
			continue
		}
		if p.accessor {
			if p.setter == nil {
				if strict {
					return NewTypeError("cannot set property %s which has only a getter", key)
				}
				return nil
			}
			_, err := Call(p.setter, o, v)
			return err
		}
		if !p.writable {
			if strict {
				return NewTypeError("cannot assign to read-only property %s", key)
			}
			return nil
		}
		if cur == o {
			p.value = v
			return nil
		}
		// Writable data property on the prototype: shadow it below.
		break
	}
	o.props[key] = &property{value: v, writable: true}
	o.shape = o.shape.transition()
	return nil
}

// DefineProperty installs an own data property, replacing any existing
// property under the key. Always transitions the shape.
func (o *Object) DefineProperty(key PropertyKey, v Value, writable bool) {
	o.props[key] = &property{value: v, writable: writable}
	o.shape = o.shape.transition()
}

// DefineAccessor installs an own accessor property. Either getter or
// setter may be nil. Always transitions the shape.
func (o *Object) DefineAccessor(key PropertyKey, getter, setter *Object) {
	o.props[key] = &property{getter: getter, setter: setter, accessor: true}
	o.shape = o.shape.transition()
}

// Delete removes an own property and reports whether it existed.
// Deleting transitions the shape.
func (o *Object) Delete(key PropertyKey) bool {
	if _, ok := o.props[key]; !ok {
		return false
	}
	delete(o.props, key)
	o.shape = o.shape.transition()
	return true
}

// HasOwn reports whether the object itself holds a property under key.
func (o *Object) HasOwn(key PropertyKey) bool {
	_, ok := o.props[key]
	return ok
}

// Has reports whether key resolves anywhere on the prototype chain.
func (o *Object) Has(key PropertyKey) bool {
	for cur := o; cur != nil; cur = cur.prototype {
		if _, ok := cur.props[key]; ok {
			return true
		}
	}
	return false
}
