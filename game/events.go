package game

// Event names emitted by the engine.
const (
	EventGameStarted = "game_started"
	EventMoveMade    = "move_made"
	EventDraw        = "draw"
	EventRecycle     = "recycle"
	EventUndo        = "undo"
	EventRedo        = "redo"
	EventGameWon     = "game_won"
)

// Listener receives engine events. Listeners run synchronously, in
// registration order, on the goroutine that performed the operation.
type Listener func(event string, data map[string]any)

// Subscription is the handle returned on registration. Unsubscribing is
// the subscriber's responsibility; the engine holds the listener until
// then.
type Subscription struct {
	engine *Engine
	id     int
}

// Unsubscribe removes the listener. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.engine == nil {
		return
	}
	for i, sub := range s.engine.listeners {
		if sub.id == s.id {
			s.engine.listeners = append(
				s.engine.listeners[:i], s.engine.listeners[i+1:]...)
			break
		}
	}
	s.engine = nil
}

type subscriber struct {
	id int
	fn Listener
}

// Subscribe registers a listener for engine events and returns its
// subscription handle.
func (e *Engine) Subscribe(fn Listener) *Subscription {
	e.nextSubID++
	e.listeners = append(e.listeners, subscriber{id: e.nextSubID, fn: fn})
	return &Subscription{engine: e, id: e.nextSubID}
}

func (e *Engine) notify(event string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	for _, sub := range e.listeners {
		sub.fn(event, data)
	}
}
