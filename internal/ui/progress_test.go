package ui_test

import (
	"io"
	"testing"
	"time"

	"github.com/brogergvhs/komikat/internal/ui"
)

func TestProgressHandle_CloseAfterMarkDone(t *testing.T) {
	t.Parallel()

	pm := ui.NewProgressManager(io.Discard)
	h := pm.Register("catalog")

	h.Update(1, 3)
	h.Update(2, 3)
	h.MarkDone()
	h.MarkDone()
	h.Update(3, 3)

	done := make(chan struct{})
	go func() {
		pm.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("progress manager did not finish")
	}
}
