package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// Load errors. Callers check them with errors.Is.
var (
	ErrEmptyMap        = errors.New("levels: empty map")
	ErrNoWorker        = errors.New("levels: map has no worker")
	ErrMultipleWorkers = errors.New("levels: map has more than one worker")
	ErrUnknownGlyph    = errors.New("levels: unknown map character")
	ErrLevelOutOfRange = errors.New("levels: level out of range")
	ErrLevelNotFound   = errors.New("levels: level not found")
	ErrNoLevels        = errors.New("levels: no levels found")

	// ErrTooLarge also matches sokoban.ErrPositionOverflow.
	ErrTooLarge = fmt.Errorf("levels: map too large: %w", sokoban.ErrPositionOverflow)
)
