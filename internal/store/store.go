// ABOUTME: In-memory application state store with debounced persistence.
// ABOUTME: Mutations apply synchronously; saves coalesce over a quiet window.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/plate-sh/plate/internal/models"
)

// DefaultDebounce is the quiet window for coalescing saves.
const DefaultDebounce = 500 * time.Millisecond

// Store owns the application snapshot. All mutation goes through its
// methods; each mutation updates memory immediately and schedules a
// debounced write to the backend. A burst of rapid mutations persists
// only its final state.
type Store struct {
	mu      sync.Mutex
	snap    *Snapshot
	backend Backend
	delay   time.Duration
	timer   *time.Timer
	logf    func(format string, args ...any)
}

// Option configures a Store.
type Option func(*Store)

// WithDebounce overrides the save debounce window.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.delay = d }
}

// WithLogger overrides where degradation messages go.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(s *Store) { s.logf = logf }
}

// Open loads persisted state through the backend and returns a ready Store.
// Missing or malformed persisted data falls back to DefaultSnapshot; load
// problems are logged, never surfaced.
func Open(ctx context.Context, backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		delay:   DefaultDebounce,
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	snap, err := backend.Load(ctx)
	if err != nil {
		if err != ErrNotFound {
			s.logf("load state: %v (starting from defaults)", err)
		}
		snap = DefaultSnapshot()
	}
	snap.normalize()
	s.snap = snap
	return s
}

// State returns a copy of the current snapshot for reading.
func (s *Store) State() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.clone()
}

// Update applies fn to the snapshot under the lock and schedules a save.
// Collection-level setters and the entity helpers are built on this.
func (s *Store) Update(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(s.snap)
	s.scheduleSaveLocked()
	s.mu.Unlock()
}

// scheduleSaveLocked (re)arms the debounce timer. A pending save is
// cancelled and replaced so only the final state of a burst is written.
// Callers must hold s.mu.
func (s *Store) scheduleSaveLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.saveNow)
}

// saveNow writes the current snapshot. The copy is taken under the lock;
// the backend call happens outside it. Write failures are logged and
// dropped; the next mutation retries naturally.
func (s *Store) saveNow() {
	s.mu.Lock()
	s.timer = nil
	snap := s.snap.clone()
	s.mu.Unlock()

	if err := s.backend.Save(context.Background(), snap); err != nil {
		s.logf("save state: %v", err)
	}
}

// Flush cancels any pending debounced save and writes immediately.
// Use it before exit or suspension, when durability cannot wait.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	snap := s.snap.clone()
	s.mu.Unlock()

	return s.backend.Save(ctx, snap)
}

// Close flushes pending state and closes the backend.
func (s *Store) Close() error {
	if err := s.Flush(context.Background()); err != nil {
		s.logf("flush on close: %v", err)
	}
	return s.backend.Close()
}

// clone copies the snapshot with fresh top-level collections and fresh
// inner slices, so a reader's copy is isolated from later mutations.
func (s *Snapshot) clone() *Snapshot {
	c := &Snapshot{
		Foods:             append([]models.FoodItem(nil), s.Foods...),
		Meals:             make([]models.Meal, len(s.Meals)),
		DailyMeals:        make(map[string]models.DailyMeal, len(s.DailyMeals)),
		WeeklyAssignments: append([]models.WeeklyAssignment(nil), s.WeeklyAssignments...),
		ShoppingLists:     make([]models.ShoppingList, len(s.ShoppingLists)),
		Settings:          s.Settings,
		Categories:        append([]string(nil), s.Categories...),
		Badges:            append([]models.Badge(nil), s.Badges...),
		HealthData:        make(map[string]models.HealthData, len(s.HealthData)),
		WaterIntake:       make(map[string]int, len(s.WaterIntake)),
	}
	for i, m := range s.Meals {
		m.Ingredients = append([]models.MealIngredient(nil), m.Ingredients...)
		c.Meals[i] = m
	}
	for i, l := range s.ShoppingLists {
		l.Items = append([]models.ShoppingItem(nil), l.Items...)
		c.ShoppingLists[i] = l
	}
	for k, v := range s.DailyMeals {
		v.Items = append([]models.DailyMealItem(nil), v.Items...)
		c.DailyMeals[k] = v
	}
	for k, v := range s.HealthData {
		c.HealthData[k] = v
	}
	for k, v := range s.WaterIntake {
		c.WaterIntake[k] = v
	}
	return c
}
