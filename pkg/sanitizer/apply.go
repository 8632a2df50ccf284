package sanitizer

// Apply runs value through the given text transformations in order.
// Useful for one-off cleanup chains over user-submitted strings while
// maintaining type safety.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable cleanup pipeline from the given
// transformations; FullCleanUp is itself such a composition. Preferred
// over repeated Apply calls when the same chain runs on many inputs.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
