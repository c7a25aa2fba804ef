package achievements

// EventType discriminates achievement events
type EventType string

const (
	// EventUnlocked fires once when an achievement unlocks
	EventUnlocked EventType = "unlocked"
	// EventProgress fires when a locked achievement gets close to unlocking
	EventProgress EventType = "progress"
)

// Event is the payload delivered to subscribers. Record is set for unlocked
// events, Progress for progress events.
type Event struct {
	Type        EventType
	Achievement AchievementDefinition
	Record      *UnlockedRecord
	Progress    *Progress
}

// Listener receives achievement events
type Listener func(Event)

type subscription struct {
	id       int
	listener Listener
}

// EventBus fans events out to subscribers synchronously, in subscription
// order, inline in the call stack of the mutation that produced the event.
// It is not safe for concurrent use; the engine's single-writer contract
// covers it. Listeners must not call back into the engine synchronously.
type EventBus struct {
	nextID        int
	subscriptions []subscription
}

// NewEventBus creates an event bus with no subscribers
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers a listener and returns a function that removes it
func (b *EventBus) Subscribe(listener Listener) func() {
	b.nextID++
	id := b.nextID
	b.subscriptions = append(b.subscriptions, subscription{id: id, listener: listener})

	return func() {
		for i, sub := range b.subscriptions {
			if sub.id == id {
				b.subscriptions = append(b.subscriptions[:i], b.subscriptions[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the event to every listener subscribed at the time of the
// call, exactly once each. Iterates over a snapshot so listeners may
// unsubscribe during delivery.
func (b *EventBus) Publish(event Event) {
	for _, sub := range append([]subscription(nil), b.subscriptions...) {
		sub.listener(event)
	}
}
