package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/verhuizer/internal/task"
)

// GenerateICal renders open tasks with deadlines as an iCalendar
// feed, one all-day VEVENT per task.
func GenerateICal(tasks []*task.Task, projectName string, now time.Time) string {
	stamp := now.UTC().Format("20060102T150405Z")

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Verhuizer//NL",
		"X-WR-CALNAME:Verhuizing " + escapeICalText(projectName),
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	for _, t := range tasks {
		if t.Deadline == nil || t.Status == task.StatusDone {
			continue
		}

		description := escapeICalText(t.Description)
		if description == "" {
			description = "Verhuizing: " + escapeICalText(projectName)
		}

		lines = append(lines,
			"BEGIN:VEVENT",
			fmt.Sprintf("UID:%s@verhuizer", t.ID),
			"DTSTAMP:"+stamp,
			"DTSTART;VALUE=DATE:"+t.Deadline.Format("20060102"),
			"SUMMARY:"+escapeICalText(t.Title),
			"DESCRIPTION:"+description,
			"END:VEVENT",
		)
	}

	lines = append(lines, "END:VCALENDAR")

	return strings.Join(lines, "\r\n") + "\r\n"
}

// escapeICalText escapes the characters RFC 5545 treats as special.
func escapeICalText(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)

	return replacer.Replace(s)
}
