package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/sideline/internal/common"
)

// ToggleSlots is the fixed length of a ToggleVector.
const ToggleSlots = 9

// ToggleVector holds the nine "transfer" flags. The array type keeps the
// length fixed; the zero value is the all-false default.
type ToggleVector [ToggleSlots]bool

// String encodes the vector as nine comma-joined boolean literals.
func (v ToggleVector) String() string {
	tokens := make([]string, len(v))
	for i, on := range v {
		if on {
			tokens[i] = "true"
		} else {
			tokens[i] = "false"
		}
	}
	return strings.Join(tokens, ",")
}

// Toggle returns a copy of v with the slot at index flipped.
func (v ToggleVector) Toggle(index int) (ToggleVector, error) {
	if index < 0 || index >= ToggleSlots {
		return v, fmt.Errorf("%w: slot %d (want 0..%d)", common.ErrIndexOutOfRange, index, ToggleSlots-1)
	}
	v[index] = !v[index]
	return v, nil
}

// Count returns how many slots are on.
func (v ToggleVector) Count() int {
	n := 0
	for _, on := range v {
		if on {
			n++
		}
	}
	return n
}

// ParseToggleVector decodes the persisted record. Anything other than exactly
// nine "true"/"false" tokens is reported as common.ErrCorruptState.
func ParseToggleVector(record string) (ToggleVector, error) {
	var v ToggleVector

	tokens := strings.Split(strings.TrimSpace(record), ",")
	if len(tokens) != ToggleSlots {
		return v, fmt.Errorf("%w: got %d tokens, want %d", common.ErrCorruptState, len(tokens), ToggleSlots)
	}

	for i, token := range tokens {
		token = strings.TrimSpace(token)
		switch {
		case strings.EqualFold(token, "true"):
			v[i] = true
		case strings.EqualFold(token, "false"):
			v[i] = false
		default:
			return ToggleVector{}, fmt.Errorf("%w: token %d is %q", common.ErrCorruptState, i, token)
		}
	}

	return v, nil
}
