package events

import "testing"

type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
	onEv  func(ev GameEvent)
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func (h *recordingHandler) HandleEvent(ctx *EventQueue, ev GameEvent) {
	*h.log = append(*h.log, h.name+":"+ev.Type.String())
	if h.onEv != nil {
		h.onEv(ev)
	}
}

func TestRouterDispatchOrder(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter[*EventQueue](eq)

	var log []string
	r.Register(&recordingHandler{name: "score", types: []EventType{EventFoodCollected, EventGameReset}, log: &log})
	r.Register(&recordingHandler{name: "state", types: []EventType{EventGameReset}, log: &log})

	if r.HandlerCount(EventGameReset) != 2 {
		t.Errorf("Expected 2 reset handlers, got %d", r.HandlerCount(EventGameReset))
	}
	if r.HandlerCount(EventBonusExpired) != 0 {
		t.Errorf("Expected no expiry handlers")
	}

	eq.Push(GameEvent{Type: EventFoodCollected})
	eq.Push(GameEvent{Type: EventBonusExpired})
	eq.Push(GameEvent{Type: EventGameReset})

	if n := r.DispatchAll(eq); n != 3 {
		t.Errorf("Expected 3 consumed events, got %d", n)
	}

	want := []string{
		"score:EventFoodCollected",
		"score:EventGameReset",
		"state:EventGameReset",
	}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Dispatch %d: expected %s, got %s", i, want[i], log[i])
		}
	}
}

func TestRouterDispatchesFollowUpEvents(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter[*EventQueue](eq)

	var log []string
	r.Register(&recordingHandler{
		name:  "score",
		types: []EventType{EventFoodCollected},
		log:   &log,
		onEv: func(ev GameEvent) {
			eq.Push(GameEvent{Type: EventScoreChanged})
		},
	})
	r.Register(&recordingHandler{name: "hud", types: []EventType{EventScoreChanged}, log: &log})

	eq.Push(GameEvent{Type: EventFoodCollected})
	if n := r.DispatchAll(eq); n != 2 {
		t.Errorf("Expected follow-up event in same dispatch, consumed %d", n)
	}
	if len(log) != 2 || log[1] != "hud:EventScoreChanged" {
		t.Errorf("Unexpected dispatch log %v", log)
	}
}

func TestEventNames(t *testing.T) {
	if got := GetEventName(EventBonusApplied); got != "EventBonusApplied" {
		t.Errorf("Expected EventBonusApplied, got %s", got)
	}
	if got := GetEventName(EventType(999)); got != "EventUnknown" {
		t.Errorf("Expected EventUnknown, got %s", got)
	}
	if et, ok := GetEventType("EventGameReset"); !ok || et != EventGameReset {
		t.Errorf("Reverse lookup failed: %v %v", et, ok)
	}
}
