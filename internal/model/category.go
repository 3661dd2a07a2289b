package model

import (
	"fmt"

	"github.com/Veraticus/sideline/internal/common"
)

// CategoryCount is the number of category buttons on the main screen.
const CategoryCount = 9

// GridColumns is the width of every 3x3 button grid in the app.
const GridColumns = 3

// CategoryLabels are the fixed sport categories in grid order (row-major).
var CategoryLabels = [CategoryCount]string{
	"Soccer", "Football", "Hockey",
	"Baseball", "Basketball", "Polo",
	"F-1", "Curling", "Volleyball",
}

// CategoryButton is one toggleable sport filter.
type CategoryButton struct {
	Label    string
	Selected bool
}

// DefaultCategoryButtons returns the nine category buttons, none selected.
func DefaultCategoryButtons() []CategoryButton {
	buttons := make([]CategoryButton, 0, CategoryCount)
	for _, label := range CategoryLabels {
		buttons = append(buttons, CategoryButton{Label: label})
	}
	return buttons
}

// ToggleCategory returns a copy of buttons with the button at index flipped.
func ToggleCategory(buttons []CategoryButton, index int) ([]CategoryButton, error) {
	if index < 0 || index >= len(buttons) {
		return nil, fmt.Errorf("%w: category %d (have %d)", common.ErrIndexOutOfRange, index, len(buttons))
	}

	updated := make([]CategoryButton, len(buttons))
	copy(updated, buttons)
	updated[index].Selected = !updated[index].Selected
	return updated, nil
}
