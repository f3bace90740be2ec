package engine

import "context"

// SetHabitLocked locks or unlocks a habit. Locked habits keep their data
// but are excluded from streak resets, repairs, and scheduling.
func (s *Service) SetHabitLocked(ctx context.Context, id string, locked bool) error {
	h := s.doc.HabitByID(id)
	if h == nil {
		return NotFoundError{Kind: "habit", ID: id}
	}
	if h.Locked == locked {
		return nil
	}
	h.Locked = locked
	if locked {
		// A locked habit is never "due"; drop any pending shift.
		h.ShiftedToDate = nil
	}
	s.persist(ctx)
	return nil
}

// SetHabitStars changes a habit's difficulty rating for future completions.
// Already-awarded XP is untouched.
func (s *Service) SetHabitStars(ctx context.Context, id string, stars int) error {
	h := s.doc.HabitByID(id)
	if h == nil {
		return NotFoundError{Kind: "habit", ID: id}
	}
	st, err := validateStars(stars)
	if err != nil {
		return err
	}
	if h.Stars == st {
		return nil
	}
	h.Stars = st
	s.persist(ctx)
	return nil
}
