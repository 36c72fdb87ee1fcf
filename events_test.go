package bubbles

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

type eventCapture struct {
	events []Event
}

func (ec *eventCapture) capture(event Event) {
	ec.events = append(ec.events, event)
}

func (ec *eventCapture) reset() {
	ec.events = ec.events[:0]
}

func (ec *eventCapture) count() int {
	return len(ec.events)
}

func (ec *eventCapture) countType(eventType EventType) int {
	n := 0
	for _, e := range ec.events {
		if e.Type() == eventType {
			n++
		}
	}
	return n
}

func (ec *eventCapture) hasEventType(eventType EventType) bool {
	return ec.countType(eventType) > 0
}

// captureAll subscribes one capture to every event type
func captureAll(events *Events) *eventCapture {
	capture := &eventCapture{}
	for eventType := BULLET_FIRED; eventType <= LEVEL_CLEARED; eventType++ {
		events.Subscribe(eventType, capture.capture)
	}
	return capture
}

// =============================================================================
// Subscribe and Listeners Tests
// =============================================================================

func TestEvents_Subscribe(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}

	events.Subscribe(BUBBLE_HIT, capture.capture)

	if len(events.listeners[BUBBLE_HIT]) != 1 {
		t.Errorf("Expected 1 listener for BUBBLE_HIT, got %d", len(events.listeners[BUBBLE_HIT]))
	}
}

func TestEvents_SubscribeZeroValue(t *testing.T) {
	var events Events
	capture := &eventCapture{}

	events.Subscribe(BULLET_FIRED, capture.capture)
	events.emit(BulletFiredEvent{Bullet: uuid.New()})
	events.flush()

	if capture.count() != 1 {
		t.Errorf("Expected 1 event, got %d", capture.count())
	}
}

func TestEvents_MultipleListeners(t *testing.T) {
	events := NewEvents()
	capture1 := &eventCapture{}
	capture2 := &eventCapture{}
	capture3 := &eventCapture{}

	events.Subscribe(BUBBLE_SPLIT, capture1.capture)
	events.Subscribe(BUBBLE_SPLIT, capture2.capture)
	events.Subscribe(BUBBLE_SPLIT, capture3.capture)

	events.emit(BubbleSplitEvent{Parent: uuid.New(), Mass: 2})
	events.flush()

	for i, c := range []*eventCapture{capture1, capture2, capture3} {
		if c.count() != 1 {
			t.Errorf("Capture%d expected 1 event, got %d", i+1, c.count())
		}
	}
}

func TestEvents_DifferentEventTypes(t *testing.T) {
	events := NewEvents()
	captureHit := &eventCapture{}
	captureBounce := &eventCapture{}

	events.Subscribe(BUBBLE_HIT, captureHit.capture)
	events.Subscribe(BUBBLE_BOUNCE, captureBounce.capture)

	events.emit(BubbleHitEvent{Bubble: uuid.New(), Bullet: uuid.New(), Mass: 3})
	events.flush()

	if captureHit.count() != 1 {
		t.Errorf("Hit capture expected 1 event, got %d", captureHit.count())
	}
	if captureBounce.count() != 0 {
		t.Errorf("Bounce capture expected 0 events, got %d", captureBounce.count())
	}
}

func TestEvents_Order(t *testing.T) {
	events := NewEvents()
	capture := captureAll(&events)

	bubble, bullet := uuid.New(), uuid.New()
	events.emit(BulletFiredEvent{Bullet: bullet})
	events.emit(BubbleHitEvent{Bubble: bubble, Bullet: bullet})
	events.emit(BubbleBounceEvent{Bubble: bubble, Surface: SURFACE_WALL, Normal: mgl64.Vec3{1, 0, 0}})
	events.emit(LevelClearedEvent{Level: "test"})
	events.flush()

	want := []EventType{BULLET_FIRED, BUBBLE_HIT, BUBBLE_BOUNCE, LEVEL_CLEARED}
	if capture.count() != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), capture.count())
	}
	for i, e := range capture.events {
		if e.Type() != want[i] {
			t.Errorf("Event %d has type %d, want %d", i, e.Type(), want[i])
		}
	}
}

func TestEvents_Flush_ClearsBuffer(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(BULLET_DESPAWN, capture.capture)

	events.emit(BulletDespawnEvent{Bullet: uuid.New()})
	events.flush()

	if len(events.buffer) != 0 {
		t.Errorf("Expected buffer to be empty after flush, got %d events", len(events.buffer))
	}
	if capture.count() != 1 {
		t.Errorf("Expected 1 event received, got %d", capture.count())
	}

	capture.reset()
	events.flush()
	if capture.count() != 0 {
		t.Errorf("A second flush should not resend events, got %d", capture.count())
	}
}

func TestEvents_Drop(t *testing.T) {
	events := NewEvents()
	capture := captureAll(&events)

	events.emit(BulletFiredEvent{Bullet: uuid.New()})
	events.drop()
	events.flush()

	if capture.hasEventType(BULLET_FIRED) {
		t.Error("Dropped events should not reach listeners")
	}
}

// =============================================================================
// Edge Cases Tests
// =============================================================================

func TestEvents_EmptyBuffer_Flush(t *testing.T) {
	events := NewEvents()

	// Flush with empty buffer should not crash
	events.flush()
}

func TestEvents_NoListeners(t *testing.T) {
	events := NewEvents()

	events.emit(LevelClearedEvent{Level: "test"})
	events.flush()

	if len(events.buffer) != 0 {
		t.Errorf("Expected buffer to be empty after flush, got %d events", len(events.buffer))
	}
}
