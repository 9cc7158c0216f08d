package event

// Handler receives a published event.
type Handler func(Event)

// Subscriber is anything collaborators can register handlers with.
type Subscriber interface {
	Subscribe(t Type, h Handler)
}

// Bus dispatches events to handlers registered per type.
//
// Dispatch is synchronous and single-threaded: Publish returns after every
// handler ran, and handlers for one type are invoked in registration order.
// A Bus is owned by the game loop and is not safe for concurrent use.
type Bus struct {
	handlers map[Type][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Type][]Handler)}
}

// Subscribe registers h for events of type t.
func (b *Bus) Subscribe(t Type, h Handler) {
	if h == nil {
		return
	}
	b.handlers[t] = append(b.handlers[t], h)
}

// Publish delivers e to every handler registered for its type.
func (b *Bus) Publish(e Event) {
	for _, h := range b.handlers[e.Type()] {
		h(e)
	}
}

func (b *Bus) handlerCount(t Type) int {
	return len(b.handlers[t])
}

// On subscribes fn to the payload type T, deriving the event type from T's
// zero value.
func On[T Event](s Subscriber, fn func(T)) {
	var zero T
	s.Subscribe(zero.Type(), func(e Event) {
		if v, ok := e.(T); ok {
			fn(v)
		}
	})
}
