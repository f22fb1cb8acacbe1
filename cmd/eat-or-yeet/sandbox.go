package main

import (
	"math/rand"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/adrian-miasik/eat-or-yeet/catalog"
	"github.com/adrian-miasik/eat-or-yeet/constants"
	"github.com/adrian-miasik/eat-or-yeet/core"
	"github.com/adrian-miasik/eat-or-yeet/engine"
	"github.com/adrian-miasik/eat-or-yeet/events"
	"github.com/adrian-miasik/eat-or-yeet/status"
)

// food is one item lying on the play field
type food struct {
	desc  *catalog.Descriptor
	glyph rune
	x, y  int
}

// Sandbox is the detection layer: key presses stand in for food falling into the hole
// It only pushes events and reads status metrics; scoring runs on the scheduler goroutine
type Sandbox struct {
	screen        tcell.Screen
	width, height int

	ctx   *engine.GameContext
	cat   *catalog.Catalog
	hud   *hud
	rng   *rand.Rand
	spawn time.Duration

	foods     []food
	lastSpawn time.Time
}

func newSandbox(screen tcell.Screen, ctx *engine.GameContext, cat *catalog.Catalog, spawn time.Duration) *Sandbox {
	s := &Sandbox{
		screen:    screen,
		ctx:       ctx,
		cat:       cat,
		hud:       newHUD(ctx.Status),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		spawn:     spawn,
		foods:     make([]food, 0, constants.MaxFoodOnScreen),
		lastSpawn: ctx.Clock.Now(),
	}
	s.width, s.height = screen.Size()
	return s
}

// spawnFood places a random catalog item on a free cell of the play field
func (s *Sandbox) spawnFood() bool {
	if len(s.foods) >= constants.MaxFoodOnScreen {
		return false
	}
	ids := s.cat.IDs()
	fieldW := s.width - 2*constants.SpawnMarginX
	fieldH := s.height - constants.HUDHeight - constants.SpawnMarginY
	if len(ids) == 0 || fieldW <= 0 || fieldH <= 0 {
		return false
	}

	id := ids[s.rng.Intn(len(ids))]
	desc, _ := s.cat.Lookup(id)

	for attempt := 0; attempt < 10; attempt++ {
		x := constants.SpawnMarginX + s.rng.Intn(fieldW)
		y := constants.SpawnMarginY + s.rng.Intn(fieldH)
		if s.occupied(x, y) {
			continue
		}
		s.foods = append(s.foods, food{desc: desc, glyph: glyphFor(id), x: x, y: y})
		return true
	}
	return false
}

func (s *Sandbox) occupied(x, y int) bool {
	for _, f := range s.foods {
		if f.x == x && f.y == y {
			return true
		}
	}
	return false
}

// glyphFor returns the key that collects an item: the lowercase first letter of its id
func glyphFor(id string) rune {
	for _, r := range id {
		return unicode.ToLower(r)
	}
	return '?'
}

// collect removes the oldest item matching the key; uppercase yeets it instead of eating it
func (s *Sandbox) collect(key rune) bool {
	glyph := unicode.ToLower(key)
	for i, f := range s.foods {
		if f.glyph != glyph {
			continue
		}
		s.foods = append(s.foods[:i], s.foods[i+1:]...)
		s.ctx.PushEvent(events.EventFoodCollected, &events.FoodCollectedPayload{
			Descriptor: f.desc,
			Yeet:       unicode.IsUpper(key),
		})
		return true
	}
	return false
}

// handleInput returns false when the sandbox should quit
func (s *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyCtrlR:
			s.foods = s.foods[:0]
			s.ctx.PushEvent(events.EventGameReset, nil)
			return true
		case tcell.KeyRune:
		default:
			return true
		}

		r := ev.Rune()
		switch {
		case r == ' ':
			s.togglePause()
		case r == '!':
			s.ctx.PushEvent(events.EventGlobalBonusRequest, &events.GlobalBonusPayload{
				Amount:   constants.GlobalBonusAmount,
				Duration: constants.GlobalBonusDuration,
			})
		case r >= '1' && r <= '9':
			c := catalog.Category(r - '1')
			if c.Valid() {
				s.ctx.PushEvent(events.EventCategoryBonusRequest, &events.CategoryBonusPayload{
					Category: c,
					Amount:   constants.CategoryBonusAmount,
					Duration: constants.CategoryBonusDuration,
				})
			}
		case s.ctx.IsPaused.Load():
			// Nothing falls into the hole while time is frozen
		default:
			s.collect(r)
		}

	case *tcell.EventResize:
		s.handleResize()
	}
	return true
}

func (s *Sandbox) togglePause() {
	if s.ctx.Status.Bools.Get(status.KeyGameEnded).Load() {
		return
	}
	if s.ctx.IsPaused.Load() {
		s.ctx.Resume()
	} else {
		s.ctx.Pause()
	}
}

func (s *Sandbox) handleResize() {
	s.width, s.height = s.screen.Size()
	kept := s.foods[:0]
	for _, f := range s.foods {
		if f.x < s.width && f.y < s.height-constants.HUDHeight {
			kept = append(kept, f)
		}
	}
	s.foods = kept
	s.screen.Sync()
}

// update spawns food on game time so nothing appears while paused
func (s *Sandbox) update() {
	now := s.ctx.Clock.Now()
	if now.Sub(s.lastSpawn) >= s.spawn {
		s.spawnFood()
		s.lastSpawn = now
	}
}

func (s *Sandbox) draw() {
	s.screen.Clear()
	for _, f := range s.foods {
		st := s.hud.style(f.desc)
		s.screen.SetContent(f.x, f.y, f.glyph, nil, st.Bold(true))
		drawText(s.screen, f.x+1, f.y, s.width, f.desc.Name(), st.Dim(true))
	}
	s.hud.draw(s.screen, s.width, s.height, s.ctx.IsPaused.Load())
	s.screen.Show()
}

func (s *Sandbox) run() {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !s.handleInput(ev) {
				return
			}
		case <-ticker.C:
			s.update()
			s.draw()
		}
	}
}
