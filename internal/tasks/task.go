package tasks

import "time"

// TimestampLayout is the createdAt format: local time, second precision.
const TimestampLayout = "2006-01-02 15:04:05"

// Task is one entry in the task list
type Task struct {
	ID          int    `json:"id" yaml:"id" toml:"id"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Done        bool   `json:"done" yaml:"done" toml:"done"`
	CreatedAt   string `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
}

// Marker returns the glyph shown in listings for the task's state
func (t Task) Marker() string {
	if t.Done {
		return "✔"
	}
	return "○"
}

func stamp(now time.Time) string {
	return now.Local().Format(TimestampLayout)
}
