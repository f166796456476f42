package service

import (
	"fmt"
	"strings"
	"time"

	"habit-tracker/internal/model"
)

// SummaryService builds human-readable summaries of what is scheduled for a
// day and how it is going.
type SummaryService struct {
	provider *Provider
}

func NewSummaryService(provider *Provider) *SummaryService {
	return &SummaryService{provider: provider}
}

// DailySummary lists the day's trackers grouped by category, marking the
// ones already completed and showing the all-time completion count.
func (s *SummaryService) DailySummary(now time.Time) (string, error) {
	grouped, err := s.provider.CategoriesFor(now)
	if err != nil {
		return "", err
	}

	var trackerIDs []int32
	for _, category := range grouped {
		for _, tracker := range category.Trackers {
			trackerIDs = append(trackerIDs, tracker.ID)
		}
	}
	records, err := s.provider.CompletedRecordsFor(trackerIDs)
	if err != nil {
		return "", err
	}

	today := model.DayKey(now)
	counts := make(map[int32]int)
	doneToday := make(map[int32]bool)
	for _, record := range records {
		counts[record.TrackerID]++
		if record.Day == today {
			doneToday[record.TrackerID] = true
		}
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Trackers for %s (%s)\n", today, now.Weekday()))

	if len(grouped) == 0 {
		builder.WriteString("— nothing scheduled today\n")
		return strings.TrimSpace(builder.String()), nil
	}

	for _, category := range grouped {
		builder.WriteString(fmt.Sprintf("\n%s\n", category.Title))
		for _, tracker := range category.Trackers {
			builder.WriteString(formatTracker(tracker, doneToday[tracker.ID], counts[tracker.ID]))
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

func formatTracker(tracker model.Tracker, done bool, count int) string {
	mark := "○"
	if done {
		mark = "✓"
	}
	line := fmt.Sprintf("  %s %s %s", mark, tracker.Emoji, tracker.Name)
	if count > 0 {
		line += fmt.Sprintf(" · %d done", count)
	}
	return line + "\n"
}
