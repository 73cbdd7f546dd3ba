// ABOUTME: Weekly meal-plan and shopping-list operations on the Store.
// ABOUTME: Assignments are one per date; lists resolve like other entities.
package store

import (
	"fmt"
	"strings"

	"github.com/plate-sh/plate/internal/models"
)

// Assign plans a meal for a date, replacing any existing assignment.
func (s *Store) Assign(date, mealRef string) (*models.WeeklyAssignment, error) {
	var out models.WeeklyAssignment
	var err error
	s.Update(func(snap *Snapshot) {
		var mi int
		mi, err = findMealIndex(snap.Meals, mealRef)
		if err != nil {
			return
		}
		out = models.WeeklyAssignment{
			Date:     date,
			MealID:   snap.Meals[mi].ID,
			MealName: snap.Meals[mi].Name,
		}
		for i, a := range snap.WeeklyAssignments {
			if a.Date == date {
				snap.WeeklyAssignments[i] = out
				return
			}
		}
		snap.WeeklyAssignments = append(snap.WeeklyAssignments, out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ClearAssignment removes the plan entry for a date, if any.
func (s *Store) ClearAssignment(date string) {
	s.Update(func(snap *Snapshot) {
		for i, a := range snap.WeeklyAssignments {
			if a.Date == date {
				snap.WeeklyAssignments = append(
					snap.WeeklyAssignments[:i], snap.WeeklyAssignments[i+1:]...)
				return
			}
		}
	})
}

// Assignment returns the planned meal for a date, or nil.
func (s *Store) Assignment(date string) *models.WeeklyAssignment {
	snap := s.State()
	for _, a := range snap.WeeklyAssignments {
		if a.Date == date {
			return &a
		}
	}
	return nil
}

// AddShoppingList appends a new shopping list.
func (s *Store) AddShoppingList(l models.ShoppingList) {
	s.Update(func(snap *Snapshot) {
		snap.ShoppingLists = append(snap.ShoppingLists, l)
	})
}

// AddShoppingItem appends an item to the matching list.
func (s *Store) AddShoppingItem(listRef, name, quantity string) error {
	var err error
	s.Update(func(snap *Snapshot) {
		var li int
		li, err = findListIndex(snap.ShoppingLists, listRef)
		if err != nil {
			return
		}
		snap.ShoppingLists[li].Items = append(snap.ShoppingLists[li].Items,
			models.ShoppingItem{Name: name, Quantity: quantity})
	})
	return err
}

// ToggleShoppingItem flips the checked flag on an item by position.
func (s *Store) ToggleShoppingItem(listRef string, idx int) (bool, error) {
	var checked bool
	var err error
	s.Update(func(snap *Snapshot) {
		var li int
		li, err = findListIndex(snap.ShoppingLists, listRef)
		if err != nil {
			return
		}
		items := snap.ShoppingLists[li].Items
		if idx < 0 || idx >= len(items) {
			err = fmt.Errorf("no shopping item at position %d", idx)
			return
		}
		items[idx].Checked = !items[idx].Checked
		checked = items[idx].Checked
	})
	return checked, err
}

// DeleteShoppingList removes the matching list.
func (s *Store) DeleteShoppingList(listRef string) error {
	var err error
	s.Update(func(snap *Snapshot) {
		var li int
		li, err = findListIndex(snap.ShoppingLists, listRef)
		if err != nil {
			return
		}
		snap.ShoppingLists = append(snap.ShoppingLists[:li], snap.ShoppingLists[li+1:]...)
	})
	return err
}

func findListIndex(lists []models.ShoppingList, ref string) (int, error) {
	matches := make([]int, 0, 2)
	for i, l := range lists {
		if strings.HasPrefix(l.ID.String(), ref) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		for i, l := range lists {
			if strings.EqualFold(l.Name, ref) {
				matches = append(matches, i)
			}
		}
	}
	return pickMatch(matches, ref)
}
