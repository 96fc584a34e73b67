package cache

type mutationKind int

const (
	mutationAdd mutationKind = iota
	mutationRemove
	mutationSetQuantity
	mutationReplacePayload
)

// Mutation is one step of an atomic Apply.
type Mutation[T any] struct {
	payload  T
	key      string
	kind     mutationKind
	quantity int
}

// Key returns the key the mutation targets.
func (m Mutation[T]) Key() string { return m.key }

// Add inserts a new item.
func Add[T any](key string, payload T) Mutation[T] {
	return Mutation[T]{kind: mutationAdd, key: key, payload: payload}
}

// Remove deletes an item.
func Remove[T any](key string) Mutation[T] {
	return Mutation[T]{kind: mutationRemove, key: key}
}

// SetQuantity changes the requested quantity of an item.
func SetQuantity[T any](key string, n int) Mutation[T] {
	return Mutation[T]{kind: mutationSetQuantity, key: key, quantity: n}
}

// ReplacePayload swaps the payload of an existing item.
func ReplacePayload[T any](key string, payload T) Mutation[T] {
	return Mutation[T]{kind: mutationReplacePayload, key: key, payload: payload}
}
