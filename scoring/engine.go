package scoring

import (
	"log"
	"math"

	"github.com/adrian-miasik/eat-or-yeet/catalog"
	"github.com/adrian-miasik/eat-or-yeet/constants"
)

// Sign selects whether an event adds or removes an item's value
type Sign int

const (
	Credit Sign = iota
	Debit
)

func (s Sign) String() string {
	if s == Debit {
		return "debit"
	}
	return "credit"
}

// ScoredEvent is one collection or removal action
// A nil Descriptor scores the fallback value with no categories
type ScoredEvent struct {
	Descriptor *catalog.Descriptor
	Sign       Sign
}

// WinObserver supplies the win threshold and receives the end-of-game notification
type WinObserver interface {
	ScoreToWin() int
	EndGame()
}

// ScoreChange is delivered to listeners after every adjustment
type ScoreChange struct {
	Previous int
	Delta    int
	Total    int
	Factors  Factors
	Fallback bool // Event had no descriptor
}

// Listener receives score changes; display layers subscribe instead of being called inline
type Listener func(ScoreChange)

// Option configures an Engine
type Option func(*Engine)

// WithWinObserver registers the win-condition collaborator
func WithWinObserver(o WinObserver) Option {
	return func(e *Engine) { e.observer = o }
}

// WithListener subscribes fn to score changes
func WithListener(fn Listener) Option {
	return func(e *Engine) { e.listeners = append(e.listeners, fn) }
}

// Engine owns the running score
// Not safe for concurrent use; shares the Ledger's logical thread
type Engine struct {
	ledger    *Ledger
	score     int
	observer  WinObserver
	listeners []Listener
}

// NewEngine creates an engine scoring through ledger
func NewEngine(ledger *Ledger, opts ...Option) *Engine {
	e := &Engine{ledger: ledger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Ledger returns the engine's multiplier ledger
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// RegisterWinObserver sets or replaces the win-condition collaborator; nil disables win checks
func (e *Engine) RegisterWinObserver(o WinObserver) {
	e.observer = o
}

// Subscribe adds a score change listener
func (e *Engine) Subscribe(fn Listener) {
	e.listeners = append(e.listeners, fn)
}

// Score returns the running total
func (e *Engine) Score() int {
	return e.score
}

// OnFoodCollected scores a collection reported by the detection layer
func (e *Engine) OnFoodCollected(d *catalog.Descriptor, sign Sign) int {
	return e.AdjustScore(ScoredEvent{Descriptor: d, Sign: sign})
}

// AdjustScore applies one event and returns the new total
// Category and global factors each scale the unscaled signed value and are added, not compounded
// Each scaled term truncates toward zero
func (e *Engine) AdjustScore(ev ScoredEvent) int {
	base := constants.FallbackPointValue
	var cats catalog.CategorySet
	if ev.Descriptor != nil {
		base = ev.Descriptor.PointValue()
		cats = ev.Descriptor.Categories()
	} else {
		log.Printf("scoring: collected item has no descriptor, scoring fallback value %d", base)
	}

	signed := base
	if ev.Sign == Debit {
		signed = -base
	}

	f := e.ledger.EffectiveMultiplier(cats)
	delta := addSat(addSat(signed, scaled(signed, f.Category)), scaled(signed, f.Global))

	prev := e.score
	e.score = addSat(e.score, delta)
	log.Printf("scoring: %s %d (x%.2f category, x%.2f global) -> %d", ev.Sign, delta, f.Category, f.Global, e.score)

	change := ScoreChange{
		Previous: prev,
		Delta:    delta,
		Total:    e.score,
		Factors:  f,
		Fallback: ev.Descriptor == nil,
	}
	for _, fn := range e.listeners {
		fn(change)
	}

	// Crossing, not level: a total that stays above the threshold does not re-fire
	if e.observer != nil {
		threshold := e.observer.ScoreToWin()
		if prev < threshold && e.score >= threshold {
			e.observer.EndGame()
		}
	}

	return e.score
}

// scaled returns value*factor truncated toward zero, saturating at the int range
// A zero value or a NaN product scales to nothing
func scaled(value int, factor float64) int {
	if value == 0 {
		return 0
	}
	x := math.Trunc(float64(value) * factor)
	switch {
	case math.IsNaN(x):
		return 0
	case x >= float64(math.MaxInt):
		return math.MaxInt
	case x <= float64(math.MinInt):
		return math.MinInt
	}
	return int(x)
}

// addSat adds without wrapping around
func addSat(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}
