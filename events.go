package bubbles

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

const (
	BULLET_FIRED EventType = iota
	BUBBLE_HIT
	BUBBLE_SPLIT
	BUBBLE_BOUNCE
	BULLET_DESPAWN
	LEVEL_CLEARED
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

type BulletFiredEvent struct {
	Bullet   uuid.UUID
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

func (e BulletFiredEvent) Type() EventType { return BULLET_FIRED }

// BubbleHitEvent is sent when a bullet reaches a bubble. Both are gone
// by the time listeners run.
type BubbleHitEvent struct {
	Bubble uuid.UUID
	Bullet uuid.UUID
	Mass   int
	// T is the fraction of the tick at which they touched
	T   float64
	At  mgl64.Vec3
	Out mgl64.Vec3
}

func (e BubbleHitEvent) Type() EventType { return BUBBLE_HIT }

type BubbleSplitEvent struct {
	Parent   uuid.UUID
	Children [2]uuid.UUID
	Mass     int
}

func (e BubbleSplitEvent) Type() EventType { return BUBBLE_SPLIT }

type Surface uint8

const (
	SURFACE_WALL Surface = iota
	SURFACE_MESH
)

type BubbleBounceEvent struct {
	Bubble  uuid.UUID
	Surface Surface
	Normal  mgl64.Vec3
}

func (e BubbleBounceEvent) Type() EventType { return BUBBLE_BOUNCE }

// BulletDespawnEvent is sent when a bullet leaves the arena
type BulletDespawnEvent struct {
	Bullet   uuid.UUID
	Position mgl64.Vec3
}

func (e BulletDespawnEvent) Type() EventType { return BULLET_DESPAWN }

// LevelClearedEvent is sent once per restart, when the last bubble is gone
type LevelClearedEvent struct {
	Level   string
	Restart uint64
	Ticks   uint64
}

func (e LevelClearedEvent) Type() EventType { return LEVEL_CLEARED }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 64),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// drop forgets the events of an unfinished step
func (e *Events) drop() {
	clear(e.buffer)
	e.buffer = e.buffer[:0]
}

// flush sends all buffered events and clears the buffer.
// Listeners may restart the world: the batch being sent is detached first.
func (e *Events) flush() {
	batch := e.buffer
	e.buffer = make([]Event, 0, cap(batch))
	for _, event := range batch {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
}
