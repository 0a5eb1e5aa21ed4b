package ui

import "sync/atomic"

// Stats counts catalog work over the life of the process.
type Stats struct {
	Builds   atomic.Int64
	Failures atomic.Int64
	Sections atomic.Int64
	Entries  atomic.Int64
	Dropped  atomic.Int64
}

type StatsSnapshot struct {
	Builds   int64 `json:"builds"`
	Failures int64 `json:"failures"`
	Sections int64 `json:"sections"`
	Entries  int64 `json:"entries"`
	Dropped  int64 `json:"dropped"`
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Builds:   s.Builds.Load(),
		Failures: s.Failures.Load(),
		Sections: s.Sections.Load(),
		Entries:  s.Entries.Load(),
		Dropped:  s.Dropped.Load(),
	}
}
