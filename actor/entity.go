package actor

// Destructible marks entities that are removed after the current scan
// rather than while it is iterating.
type Destructible interface {
	IsDestroyed() bool
	MarkDestroyed()
}

type destroyable struct {
	destroyed bool
}

func (d *destroyable) IsDestroyed() bool {
	return d.destroyed
}

func (d *destroyable) MarkDestroyed() {
	d.destroyed = true
}

// Compact removes destroyed entities in place, keeping the order of the others
func Compact[T Destructible](entities []T) []T {
	n := 0
	for _, e := range entities {
		if !e.IsDestroyed() {
			entities[n] = e
			n++
		}
	}
	clear(entities[n:])
	return entities[:n]
}
