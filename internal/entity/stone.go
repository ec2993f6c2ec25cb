package entity

// Stone - a single unit of game material. Stones carry no state; ownership is
// given by the container holding them.
type Stone struct{}

func newStones(n int) []Stone {
	return make([]Stone, n)
}
