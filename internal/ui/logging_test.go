package ui_test

import (
	"bytes"
	"testing"

	"github.com/brogergvhs/komikat/internal/ui"
	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	t.Run("debug lines are hidden by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := ui.NewLoggerTo(&buf, false)

		log.Debugf("dropped %d\n", 1)
		log.Infof("built %d sections", 3)

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, `"message":"built 3 sections"`)
		assert.Contains(t, out, `"level":"info"`)
	})

	t.Run("debug lines are shown when enabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := ui.NewLoggerTo(&buf, true)

		log.Debugf("dropped %d\n", 1)
		log.Warnf("listing skipped")

		out := buf.String()
		assert.Contains(t, out, `"message":"dropped 1"`)
		assert.Contains(t, out, `"level":"warn"`)
	})
}

func TestStats_Snapshot(t *testing.T) {
	t.Parallel()

	var s ui.Stats
	s.Builds.Add(2)
	s.Failures.Add(1)
	s.Entries.Add(40)

	assert.Equal(t, ui.StatsSnapshot{Builds: 2, Failures: 1, Entries: 40}, s.Snapshot())
}
