package domain

import "errors"

// MaxRating is the number of stars offered by the rating widget.
const MaxRating = 5

// ErrEmptyDescription is returned when a draft without a description is offered for submission.
var ErrEmptyDescription = errors.New("review description must not be empty")

// ReviewDraft is unsaved user input for a new review, including the state of the star widget.
// It belongs to whichever presentation layer is collecting the input.
type ReviewDraft struct {
	Name        string
	Rating      int
	Description string

	hoveredStars int
	locked       bool
}

// HoverStar previews a rating while the pointer is over star n. Ignored once a star has been clicked.
func (d *ReviewDraft) HoverStar(n int) {
	if d.locked {
		return
	}
	d.hoveredStars = clampStars(n)
}

// LeaveStars clears the hover preview unless a star has been clicked.
func (d *ReviewDraft) LeaveStars() {
	if d.locked {
		return
	}
	d.hoveredStars = 0
}

// ClickStar selects rating n and toggles the lock that freezes the hover preview.
func (d *ReviewDraft) ClickStar(n int) {
	d.locked = !d.locked
	d.Rating = clampStars(n)
}

// DisplayedStars is the number of stars to render as filled.
func (d *ReviewDraft) DisplayedStars() int {
	if d.hoveredStars != 0 {
		return d.hoveredStars
	}
	return d.Rating
}

// Locked reports whether the star selection is currently frozen by a click.
func (d *ReviewDraft) Locked() bool {
	return d.locked
}

// CanSubmit reports whether the draft is ready to be submitted.
func (d *ReviewDraft) CanSubmit() bool {
	return d.Validate() == nil
}

// Validate checks the draft against the rules enforced before submission.
func (d *ReviewDraft) Validate() error {
	if d.Description == "" {
		return ErrEmptyDescription
	}
	return nil
}

// Input returns the fields sent to the remote service.
func (d *ReviewDraft) Input() ReviewInput {
	return ReviewInput{
		Name:        d.Name,
		Rating:      d.Rating,
		Description: d.Description,
	}
}

// Reset discards all input and widget state.
func (d *ReviewDraft) Reset() {
	*d = ReviewDraft{}
}

func clampStars(n int) int {
	return max(0, min(n, MaxRating))
}
