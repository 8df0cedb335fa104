package game

import "fmt"

// Validation error codes.
const (
	CodeNoPlayer        = "NO_PLAYER"
	CodeMultiplePlayers = "MULTIPLE_PLAYERS"
	CodeNoGoal          = "NO_GOAL"
	CodeInvalidSize     = "INVALID_SIZE"
	CodeUnknownKind     = "UNKNOWN_KIND"
)

// ValidationError contains details about a rejected level layout.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a layout can be simulated:
//   - every entity has a known kind and a positive size
//   - exactly one player
//   - at least one goal
func Validate(layout []Descriptor) error {
	players, goals := 0, 0

	for i, d := range layout {
		if !d.Kind.Valid() {
			return ValidationError{
				Code:    CodeUnknownKind,
				Message: fmt.Sprintf("entity %d has unknown kind %d", i, int(d.Kind)),
			}
		}
		if !d.Bounds().Valid() {
			return ValidationError{
				Code:    CodeInvalidSize,
				Message: fmt.Sprintf("entity %d (%s) has size %gx%g", i, d.Kind, d.W, d.H),
			}
		}

		switch d.Kind {
		case KindPlayer:
			players++
		case KindGoal:
			goals++
		}
	}

	switch {
	case players == 0:
		return ValidationError{Code: CodeNoPlayer, Message: "layout has no player"}
	case players > 1:
		return ValidationError{
			Code:    CodeMultiplePlayers,
			Message: fmt.Sprintf("layout has %d players, expected 1", players),
		}
	case goals == 0:
		return ValidationError{Code: CodeNoGoal, Message: "layout has no goal"}
	}

	return nil
}
