package domain

import "math"

// TaskStats summarizes completion across a set of tasks.
type TaskStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	// Progress is the completed share as a whole percentage, 0 when there are no tasks.
	Progress int `json:"progress"`
}

// ComputeStats summarizes the given tasks.
func ComputeStats(tasks []Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
	}

	if stats.Total > 0 {
		stats.Progress = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}

	return stats
}

// Open returns the number of tasks not yet completed.
func (s TaskStats) Open() int {
	return s.Total - s.Completed
}
