package scriptenc

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is one node of a structured value tree: null, boolean,
// number, string, array, or an object whose members keep insertion
// order. The zero Value is null.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  float64
	strVal  string
	arrVal  []Value
	objVal  []Member
}

// Member is a single object entry. Members are encoded in the order
// they were given to Object.
type Member struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolVal: b}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, numVal: f}
}

// Int returns a numeric value from an integer.
func Int(i int64) Value {
	return Value{kind: KindNumber, numVal: float64(i)}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, strVal: s}
}

// Array returns a sequence value holding elems in order.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arrVal: elems}
}

// Object returns an object value holding members in the given order.
func Object(members ...Member) Value {
	return Value{kind: KindObject, objVal: members}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}
