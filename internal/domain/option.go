package domain

import "encoding/json"

// Option - необязательное значение: отличает "не задано" от нулевого значения
type Option[T any] struct {
	value T
	ok    bool
}

// Some возвращает заданное значение
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None возвращает пустое значение
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get возвращает значение и признак его наличия
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSet возвращает true, если значение задано
func (o Option[T]) IsSet() bool {
	return o.ok
}

// OrElse возвращает значение или fallback
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// MarshalJSON кодирует пустое значение как null
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
