package progress_test

import (
	"testing"

	"github.com/zjrosen/vimtutor/internal/progress"
	"github.com/zjrosen/vimtutor/internal/progress/progresstest"
)

func TestMemoryStore(t *testing.T) {
	progresstest.Run(t, func(t *testing.T, clock *progresstest.Clock) progress.Store {
		return progress.NewMemoryStore().WithClock(clock.Now)
	})
}
