// internal/entity/ids.go
package entity

// ID identifies an entity for the lifetime of a match.
type ID uint64

// IDGenerator hands out increasing IDs, starting at 1 so the zero value can
// mean "no entity".
type IDGenerator struct {
	next ID
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: 1}
}

func (g *IDGenerator) Next() ID {
	id := g.next
	g.next++
	return id
}
