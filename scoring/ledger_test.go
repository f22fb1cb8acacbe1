package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/adrian-miasik/eat-or-yeet/catalog"
	"github.com/adrian-miasik/eat-or-yeet/engine"
)

// newTestLedger returns a ledger on a mock clock starting at engine.TestEpoch
func newTestLedger() (*Ledger, *engine.MockTimeProvider, *engine.TimerQueue) {
	clock := engine.NewMockTimeProvider(engine.TestEpoch)
	timers := engine.NewTimerQueue(clock)
	return NewLedger(timers), clock, timers
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGlobalBonusRoundTrip(t *testing.T) {
	tests := []struct {
		amount   float64
		duration time.Duration
	}{
		{2.0, 10 * time.Second},
		{0.5, time.Second},
		{-1.5, 3 * time.Second},
		{3.25, time.Millisecond},
	}

	for _, tt := range tests {
		l, clock, _ := newTestLedger()

		before := l.GlobalDisplayMultiplier()
		beforeFactor := l.EffectiveMultiplier(0).Global

		if _, err := l.ApplyGlobalBonus(tt.amount, tt.duration); err != nil {
			t.Fatalf("ApplyGlobalBonus(%v, %v): %v", tt.amount, tt.duration, err)
		}

		during := l.GlobalDisplayMultiplier()
		if !floatEq(during, tt.amount) {
			t.Errorf("amount %v: expected raw sum %v while active, got %v", tt.amount, tt.amount, during)
		}
		wantFactor := math.Max(tt.amount-1, 0)
		if got := l.EffectiveMultiplier(0).Global; !floatEq(got, wantFactor) {
			t.Errorf("amount %v: expected global factor %v, got %v", tt.amount, wantFactor, got)
		}

		clock.Advance(tt.duration)

		if got := l.GlobalDisplayMultiplier(); got != before {
			t.Errorf("amount %v: expected display %v after expiry, got %v", tt.amount, before, got)
		}
		if got := l.EffectiveMultiplier(0).Global; got != beforeFactor {
			t.Errorf("amount %v: expected factor %v after expiry, got %v", tt.amount, beforeFactor, got)
		}
	}
}

func TestBonusWindowBoundary(t *testing.T) {
	l, clock, _ := newTestLedger()

	if _, err := l.ApplyCategoryBonus(catalog.Fruit, 3.0, 5*time.Second); err != nil {
		t.Fatalf("ApplyCategoryBonus: %v", err)
	}
	fruit := catalog.NewCategorySet(catalog.Fruit)

	clock.Advance(5*time.Second - time.Nanosecond)
	if got := l.EffectiveMultiplier(fruit).Category; !floatEq(got, 2.0) {
		t.Errorf("Bonus should still be active just before expiry, factor %v", got)
	}

	clock.Advance(time.Nanosecond)
	if got := l.EffectiveMultiplier(fruit).Category; got != 0 {
		t.Errorf("Bonus should be gone at applyTime+duration, factor %v", got)
	}
	if len(l.ActiveBonuses()) != 0 {
		t.Error("Expired bonus still listed")
	}
}

func TestInvalidBonusRejected(t *testing.T) {
	tests := []struct {
		name  string
		apply func(l *Ledger) error
	}{
		{"global zero amount", func(l *Ledger) error { _, err := l.ApplyGlobalBonus(0, time.Second); return err }},
		{"global zero duration", func(l *Ledger) error { _, err := l.ApplyGlobalBonus(2, 0); return err }},
		{"global negative duration", func(l *Ledger) error { _, err := l.ApplyGlobalBonus(2, -time.Second); return err }},
		{"global NaN", func(l *Ledger) error { _, err := l.ApplyGlobalBonus(math.NaN(), time.Second); return err }},
		{"category zero amount", func(l *Ledger) error { _, err := l.ApplyCategoryBonus(catalog.Meat, 0, time.Second); return err }},
		{"category zero duration", func(l *Ledger) error { _, err := l.ApplyCategoryBonus(catalog.Meat, 1.5, 0); return err }},
		{"unknown category", func(l *Ledger) error { _, err := l.ApplyCategoryBonus(catalog.CategoryCount, 1.5, time.Second); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, timers := newTestLedger()

			err := tt.apply(l)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("Expected ErrInvalidArgument, got %v", err)
			}
			if timers.Pending() != 0 {
				t.Errorf("Rejected bonus scheduled %d expiries", timers.Pending())
			}
			if len(l.ActiveBonuses()) != 0 {
				t.Error("Rejected bonus recorded as active")
			}
			if l.GlobalDisplayMultiplier() != 1 {
				t.Errorf("Global sum changed: %v", l.GlobalDisplayMultiplier())
			}
			for _, c := range catalog.Categories() {
				if l.DisplayMultiplier(c) != 1 {
					t.Errorf("Category %v sum changed: %v", c, l.DisplayMultiplier(c))
				}
			}
		})
	}
}

func TestStackedCategoryBonuses(t *testing.T) {
	l, clock, _ := newTestLedger()
	fruit := catalog.NewCategorySet(catalog.Fruit)

	if _, err := l.ApplyCategoryBonus(catalog.Fruit, 1.5, 4*time.Second); err != nil {
		t.Fatal(err)
	}
	if _, err := l.ApplyCategoryBonus(catalog.Fruit, 1.0, 8*time.Second); err != nil {
		t.Fatal(err)
	}

	if got := l.DisplayMultiplier(catalog.Fruit); !floatEq(got, 2.5) {
		t.Errorf("Expected category sum 2.5, got %v", got)
	}
	f := l.EffectiveMultiplier(fruit)
	if !floatEq(f.Category, 1.5) {
		t.Errorf("Expected category factor 1.5, got %v", f.Category)
	}
	if f.Global != 0 {
		t.Errorf("Category bonus leaked into global factor: %v", f.Global)
	}

	// Other categories are untouched
	if got := l.EffectiveMultiplier(catalog.NewCategorySet(catalog.Meat)).Category; got != 0 {
		t.Errorf("Meat factor should be 0, got %v", got)
	}

	// First bonus expires, second remains: sum 1.0 contributes no excess
	clock.Advance(4 * time.Second)
	if got := l.DisplayMultiplier(catalog.Fruit); !floatEq(got, 1.0) {
		t.Errorf("Expected sum 1.0 after first expiry, got %v", got)
	}
	if got := l.EffectiveMultiplier(fruit).Category; got != 0 {
		t.Errorf("Expected no excess at sum 1.0, got %v", got)
	}
}

func TestMultiCategoryItemSumsTags(t *testing.T) {
	l, _, _ := newTestLedger()

	if _, err := l.ApplyCategoryBonus(catalog.Junk, 1.5, time.Second); err != nil {
		t.Fatal(err)
	}
	if _, err := l.ApplyCategoryBonus(catalog.Meat, 1.0, time.Second); err != nil {
		t.Fatal(err)
	}

	burger := catalog.NewCategorySet(catalog.Junk, catalog.Meat, catalog.Grain)
	if got := l.EffectiveMultiplier(burger).Category; !floatEq(got, 1.5) {
		t.Errorf("Expected summed factor 1.5, got %v", got)
	}
}

func TestFloatDriftClamped(t *testing.T) {
	l, clock, _ := newTestLedger()

	for _, amt := range []float64{0.1, 0.2, 0.3} {
		if _, err := l.ApplyCategoryBonus(catalog.Sweet, amt, time.Second); err != nil {
			t.Fatal(err)
		}
		clock.Advance(100 * time.Millisecond)
	}

	clock.Advance(time.Second)
	l.Settle()

	if l.categorySum[catalog.Sweet] != 0 {
		t.Errorf("Expected exact zero after all expiries, got %v", l.categorySum[catalog.Sweet])
	}
	if got := l.DisplayMultiplier(catalog.Sweet); got != 1 {
		t.Errorf("Expected display baseline 1, got %v", got)
	}
}

func TestExpireHookAndOrdering(t *testing.T) {
	l, clock, _ := newTestLedger()

	var expired []Scope
	l.OnExpire(func(b Bonus) { expired = append(expired, b.Scope) })

	if _, err := l.ApplyGlobalBonus(2, 3*time.Second); err != nil {
		t.Fatal(err)
	}
	if _, err := l.ApplyCategoryBonus(catalog.Dairy, 2, time.Second); err != nil {
		t.Fatal(err)
	}

	active := l.ActiveBonuses()
	if len(active) != 2 {
		t.Fatalf("Expected 2 active bonuses, got %d", len(active))
	}
	if active[0].Scope != CategoryScope(catalog.Dairy) || !active[1].Scope.Global {
		t.Errorf("Active bonuses not ordered by expiry: %+v", active)
	}
	if !active[1].ExpiresAt.Equal(engine.TestEpoch.Add(3 * time.Second)) {
		t.Errorf("Unexpected expiry %v", active[1].ExpiresAt)
	}

	clock.Advance(5 * time.Second)
	l.Settle()

	if len(expired) != 2 {
		t.Fatalf("Expected 2 expiry callbacks, got %d", len(expired))
	}
	if expired[0] != CategoryScope(catalog.Dairy) || expired[1] != GlobalScope() {
		t.Errorf("Expiries fired out of order: %v", expired)
	}
}

func TestDisplayMultiplierDefaults(t *testing.T) {
	l, _, _ := newTestLedger()

	if got := l.DisplayMultiplier(catalog.Grain); got != 1 {
		t.Errorf("Expected 1 with no bonus, got %v", got)
	}
	if got := l.DisplayMultiplier(catalog.Category(-3)); got != 1 {
		t.Errorf("Expected 1 for unknown category, got %v", got)
	}

	// Opposite bonuses cancel to a zero sum, shown as baseline
	l.ApplyCategoryBonus(catalog.Grain, 2, time.Second)
	l.ApplyCategoryBonus(catalog.Grain, -2, time.Second)
	if got := l.DisplayMultiplier(catalog.Grain); got != 1 {
		t.Errorf("Expected 1 for cancelled sum, got %v", got)
	}
}

func TestBonusSumOverflowRejected(t *testing.T) {
	tests := []struct {
		name  string
		apply func(l *Ledger) (Bonus, error)
		sum   func(l *Ledger) float64
	}{
		{
			name:  "global",
			apply: func(l *Ledger) (Bonus, error) { return l.ApplyGlobalBonus(1e308, time.Minute) },
			sum:   func(l *Ledger) float64 { return l.GlobalDisplayMultiplier() },
		},
		{
			name:  "category",
			apply: func(l *Ledger) (Bonus, error) { return l.ApplyCategoryBonus(catalog.Sweet, 1e308, time.Minute) },
			sum:   func(l *Ledger) float64 { return l.DisplayMultiplier(catalog.Sweet) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, timers := newTestLedger()

			if _, err := tt.apply(l); err != nil {
				t.Fatalf("First bonus rejected: %v", err)
			}
			if _, err := tt.apply(l); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("Expected ErrInvalidArgument for an overflowing sum, got %v", err)
			}

			if got := tt.sum(l); got != 1e308 {
				t.Errorf("Rejected bonus changed the sum to %v", got)
			}
			if timers.Pending() != 1 || len(l.ActiveBonuses()) != 1 {
				t.Errorf("Rejected bonus left state behind: %d pending, %d active", timers.Pending(), len(l.ActiveBonuses()))
			}
		})
	}
}

// steppingClock moves forward on every reading, like a live clock between two calls
type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func TestBonusExpiresAtMatchesDeadline(t *testing.T) {
	timers := engine.NewTimerQueue(&steppingClock{now: engine.TestEpoch})
	l := NewLedger(timers)

	b, err := l.ApplyGlobalBonus(2, time.Second)
	if err != nil {
		t.Fatalf("ApplyGlobalBonus: %v", err)
	}

	deadline, ok := timers.NextDeadline()
	if !ok {
		t.Fatal("No expiry scheduled")
	}
	if !b.ExpiresAt.Equal(deadline) {
		t.Errorf("ExpiresAt %v differs from firing deadline %v", b.ExpiresAt, deadline)
	}
	if got := l.ActiveBonuses()[0].ExpiresAt; !got.Equal(deadline) {
		t.Errorf("Snapshot ExpiresAt %v differs from firing deadline %v", got, deadline)
	}
}
