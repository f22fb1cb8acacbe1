package events

var eventNames = map[EventType]string{
	EventTick:                 "Tick",
	EventFoodCollected:        "EventFoodCollected",
	EventGlobalBonusRequest:   "EventGlobalBonusRequest",
	EventCategoryBonusRequest: "EventCategoryBonusRequest",
	EventScoreChanged:         "EventScoreChanged",
	EventBonusApplied:         "EventBonusApplied",
	EventBonusRejected:        "EventBonusRejected",
	EventBonusExpired:         "EventBonusExpired",
	EventGameEnded:            "EventGameEnded",
	EventGameReset:            "EventGameReset",
}

// GetEventName returns the string name for an EventType, used in logs
func GetEventName(et EventType) string {
	if name, ok := eventNames[et]; ok {
		return name
	}
	return "EventUnknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	for et, n := range eventNames {
		if n == name {
			return et, true
		}
	}
	return 0, false
}

func (et EventType) String() string {
	return GetEventName(et)
}
