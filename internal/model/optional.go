package model

// Optional holds either a value or nothing. The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool { return o.present }

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// EqualOptionalFunc reports whether a and b are both absent, or both present with eq(a, b).
func EqualOptionalFunc[T any](a, b Optional[T], eq func(x, y T) bool) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || eq(a.value, b.value)
}

func EqualOptional[T comparable](a, b Optional[T]) bool {
	return EqualOptionalFunc(a, b, func(x, y T) bool { return x == y })
}
