// Package present maps task enums and timestamps to display text.
package present

import (
	"fmt"
	"time"

	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
)

const msPerDay = 86_400_000

var months = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func PriorityLabel(p tasks.Priority) string {
	switch p {
	case tasks.PriorityMedium:
		return "Medium"
	case tasks.PriorityHigh:
		return "High"
	default:
		return "Low"
	}
}

// StatusLabel keeps the mixed capitalization users already know
// ("Complete" is the only capitalized status).
func StatusLabel(s tasks.Status) string {
	switch s {
	case tasks.StatusPending:
		return "pending"
	case tasks.StatusInProgress:
		return "in progress"
	case tasks.StatusComplete:
		return "Complete"
	default:
		return "new"
	}
}

func PriorityClass(p tasks.Priority) string {
	switch p {
	case tasks.PriorityMedium:
		return "task-priority-medium"
	case tasks.PriorityHigh:
		return "task-priority-high"
	default:
		return "task-priority-low"
	}
}

func StatusClass(s tasks.Status) string {
	switch s {
	case tasks.StatusPending:
		return "task-status-pending"
	case tasks.StatusInProgress:
		return "task-status-inprogress"
	case tasks.StatusComplete:
		return "task-status-complete"
	default:
		return "task-status-new"
	}
}

// FormatDate renders ms as "5 Jun 2025" in loc.
func FormatDate(ms int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t := time.UnixMilli(ms).In(loc)
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}

func FormatDateLocal(ms int64) string {
	return FormatDate(ms, time.Local)
}

func AddDays(ms int64, days int) int64 {
	return ms + int64(days)*msPerDay
}

// NowMillis converts t to the ms-since-epoch representation tasks use.
func NowMillis(t time.Time) int64 {
	return t.UnixMilli()
}
