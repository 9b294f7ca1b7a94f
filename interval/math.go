package interval

// Number constrains the numeric types whose intervals support arithmetic
// transformations.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Shift returns the interval translated by delta: both endpoints move, the
// open/closed flags stay. Shifting the empty interval yields the empty
// interval.
func Shift[T Number](iv Interval[T], delta T) Interval[T] {
	if iv.IsEmpty() {
		return iv
	}
	return normalized(iv.lower.Value+delta, iv.lower.Closed, iv.upper.Value+delta, iv.upper.Closed)
}

// Scale returns the interval with both endpoints multiplied by factor. A
// negative factor mirrors the interval, swapping which endpoint is the lower
// one. Integer intervals whose endpoints collapse onto the same value with
// an open flag degrade to the empty interval (e.g. scaling the open (2,3)
// down by an integer division via Quotient).
func Scale[T Number](iv Interval[T], factor T) Interval[T] {
	if iv.IsEmpty() {
		return iv
	}
	return normalized(iv.lower.Value*factor, iv.lower.Closed, iv.upper.Value*factor, iv.upper.Closed)
}

// Quotient returns the interval with both endpoints divided by divisor. For
// integer types the endpoints truncate, which may collapse a narrow open
// interval to empty. Division by zero panics, as it does for the scalar
// types themselves.
func Quotient[T Number](iv Interval[T], divisor T) Interval[T] {
	if iv.IsEmpty() {
		return iv
	}
	return normalized(iv.lower.Value/divisor, iv.lower.Closed, iv.upper.Value/divisor, iv.upper.Closed)
}

// Neg returns the interval mirrored around zero.
func Neg[T Number](iv Interval[T]) Interval[T] {
	if iv.IsEmpty() {
		return iv
	}
	return normalized(-iv.upper.Value, iv.upper.Closed, -iv.lower.Value, iv.lower.Closed)
}
