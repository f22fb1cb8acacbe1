package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/adrian-miasik/eat-or-yeet/catalog"
	"github.com/adrian-miasik/eat-or-yeet/constants"
)

// Scheduler defers callbacks in game time
// engine.TimerQueue is the production implementation
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) time.Time // Returns the deadline
	RunDue() int
}

// Scope selects which sum a bonus contributes to
type Scope struct {
	Global   bool
	Category catalog.Category // Ignored when Global
}

// GlobalScope applies to every scored item
func GlobalScope() Scope { return Scope{Global: true} }

// CategoryScope applies to items tagged with c
func CategoryScope(c catalog.Category) Scope { return Scope{Category: c} }

func (s Scope) String() string {
	if s.Global {
		return "global"
	}
	return s.Category.String()
}

// Bonus is one active, time-bounded multiplier contribution
type Bonus struct {
	Scope     Scope
	Amount    float64
	AppliedAt time.Time
	ExpiresAt time.Time

	id uint64
}

// Factors are the excess multipliers applied to a scored value
// Each is max(sum - 1, 0): a baseline sum of 1 or less adds nothing
type Factors struct {
	Category float64
	Global   float64
}

// Ledger tracks active multiplier bonuses and their sums
// Not safe for concurrent use; drive it from a single logical thread
type Ledger struct {
	sched Scheduler

	globalSum    float64
	globalActive int

	// Indexed by catalog.Category, one slot per enumerated category, all zero at start
	categorySum    [catalog.CategoryCount]float64
	categoryActive [catalog.CategoryCount]int

	active map[uint64]Bonus
	nextID uint64

	onExpire func(Bonus)
}

// NewLedger creates an empty ledger scheduling expiries on sched
func NewLedger(sched Scheduler) *Ledger {
	return &Ledger{
		sched:  sched,
		active: make(map[uint64]Bonus),
	}
}

// OnExpire installs a hook called after each bonus is removed
func (l *Ledger) OnExpire(fn func(Bonus)) {
	l.onExpire = fn
}

// ApplyGlobalBonus adds amount to the global sum for duration of game time
func (l *Ledger) ApplyGlobalBonus(amount float64, duration time.Duration) (Bonus, error) {
	return l.apply(GlobalScope(), amount, duration)
}

// ApplyCategoryBonus adds amount to one category's sum for duration of game time
func (l *Ledger) ApplyCategoryBonus(category catalog.Category, amount float64, duration time.Duration) (Bonus, error) {
	if !category.Valid() {
		return Bonus{}, errors.Wrapf(ErrInvalidArgument, "unknown category %d", int(category))
	}
	return l.apply(CategoryScope(category), amount, duration)
}

func (l *Ledger) apply(scope Scope, amount float64, duration time.Duration) (Bonus, error) {
	if amount == 0 {
		return Bonus{}, errors.Wrapf(ErrInvalidArgument, "%s multiplier should not be 0", scope)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Bonus{}, errors.Wrapf(ErrInvalidArgument, "%s multiplier %v is not finite", scope, amount)
	}
	if duration <= 0 {
		return Bonus{}, errors.Wrapf(ErrInvalidArgument, "%s duration should be greater than 0, got %v", scope, duration)
	}

	sum := l.globalSum
	if !scope.Global {
		sum = l.categorySum[scope.Category]
	}
	if next := sum + amount; math.IsNaN(next) || math.IsInf(next, 0) {
		return Bonus{}, errors.Wrapf(ErrInvalidArgument, "%s multiplier %v would overflow the active sum %v", scope, amount, sum)
	}

	l.nextID++
	id := l.nextID
	now := l.sched.Now()
	expiresAt := l.sched.AfterFunc(duration, func() { l.expire(id) })

	b := Bonus{
		Scope:     scope,
		Amount:    amount,
		AppliedAt: now,
		ExpiresAt: expiresAt,
		id:        id,
	}

	l.active[id] = b
	if scope.Global {
		l.globalSum += amount
		l.globalActive++
	} else {
		l.categorySum[scope.Category] += amount
		l.categoryActive[scope.Category]++
	}

	return b, nil
}

func (l *Ledger) expire(id uint64) {
	b, ok := l.active[id]
	if !ok {
		return
	}
	delete(l.active, id)

	if b.Scope.Global {
		l.globalActive--
		l.globalSum = settleSum(l.globalSum-b.Amount, l.globalActive)
	} else {
		c := b.Scope.Category
		l.categoryActive[c]--
		l.categorySum[c] = settleSum(l.categorySum[c]-b.Amount, l.categoryActive[c])
	}

	if l.onExpire != nil {
		l.onExpire(b)
	}
}

// settleSum removes float drift: an empty scope is exactly 0, near-zero values snap to 0
func settleSum(sum float64, active int) float64 {
	if active <= 0 || math.Abs(sum) < constants.MultiplierEpsilon {
		return 0
	}
	return sum
}

// Settle fires expiries that are due at the scheduler's current time
func (l *Ledger) Settle() {
	l.sched.RunDue()
}

// EffectiveMultiplier returns the category and global factors for an item tagged with cats
// Category sums of every tag are added together before the baseline is removed
func (l *Ledger) EffectiveMultiplier(cats catalog.CategorySet) Factors {
	l.Settle()

	var catSum float64
	for _, c := range cats.Categories() {
		catSum += l.categorySum[c]
	}
	return Factors{
		Category: math.Max(catSum-1, 0),
		Global:   math.Max(l.globalSum-1, 0),
	}
}

// DisplayMultiplier returns the raw bonus sum of a category for display, 1 when none is active
func (l *Ledger) DisplayMultiplier(c catalog.Category) float64 {
	if !c.Valid() {
		return constants.BaselineMultiplier
	}
	l.Settle()
	return displayValue(l.categorySum[c])
}

// GlobalDisplayMultiplier returns the raw global bonus sum for display, 1 when none is active
func (l *Ledger) GlobalDisplayMultiplier() float64 {
	l.Settle()
	return displayValue(l.globalSum)
}

func displayValue(sum float64) float64 {
	if sum == 0 {
		return constants.BaselineMultiplier
	}
	return sum
}

// ActiveBonuses returns the live bonuses ordered by expiry
func (l *Ledger) ActiveBonuses() []Bonus {
	l.Settle()

	out := make([]Bonus, 0, len(l.active))
	for _, b := range l.active {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ExpiresAt.Equal(out[j].ExpiresAt) {
			return out[i].id < out[j].id
		}
		return out[i].ExpiresAt.Before(out[j].ExpiresAt)
	})
	return out
}
