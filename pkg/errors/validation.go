package errors

import "time"

// Limits for user-supplied grid settings.
const (
	// MaxDimension bounds the grid so a full board still fits a large terminal.
	MaxDimension = 200

	// MaxCellWidth is the widest block, in terminal columns, a cell may occupy.
	MaxCellWidth = 8

	// MaxStepDelay caps the animation pause between two search steps.
	MaxStepDelay = 5 * time.Second
)

// ValidateDimension checks a requested grid dimension.
// A non-positive size is an INVALID_DIMENSION error; anything above
// MaxDimension is rejected as INVALID_INPUT.
func ValidateDimension(n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidDimension, "grid dimension must be positive, got %d", n)
	}
	if n > MaxDimension {
		return New(ErrCodeInvalidInput, "grid dimension too large (max %d), got %d", MaxDimension, n)
	}
	return nil
}

// ValidateCellWidth checks the number of terminal columns per cell.
func ValidateCellWidth(w int) error {
	if w < 1 || w > MaxCellWidth {
		return New(ErrCodeInvalidInput, "cell width must be between 1 and %d, got %d", MaxCellWidth, w)
	}
	return nil
}

// ValidateStepDelay checks the animation delay between search steps.
// Zero is allowed and means "as fast as the event loop can go".
func ValidateStepDelay(d time.Duration) error {
	if d < 0 {
		return New(ErrCodeInvalidInput, "step delay cannot be negative, got %s", d)
	}
	if d > MaxStepDelay {
		return New(ErrCodeInvalidInput, "step delay too long (max %s), got %s", MaxStepDelay, d)
	}
	return nil
}
