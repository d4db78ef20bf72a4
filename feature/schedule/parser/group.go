package parser

import (
	"fmt"
	"strings"
	"time"

	"timetable-sync/feature/schedule/models"
)

// ParseGroup extracts a group schedule from a timetable page.
// The page title has the form: Расписание группы "БПИ23-01" 1 семестр 2023-2024 уч. г.
func ParseGroup(document []byte) (*models.Schedule, error) {
	doc, err := load(document)
	if err != nil {
		return nil, err
	}

	title, err := pageTitle(doc)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(title, `"`)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: unexpected title format: %s", ErrMalformed, title)
	}

	schedule := &models.Schedule{
		Kind:        models.KindGroup,
		Name:        parts[1],
		Term:        strings.TrimSpace(strings.ReplaceAll(parts[2], "г.", "")),
		Origin:      models.OriginFresh,
		RetrievedAt: time.Now(),
	}

	schedule.Weeks = parseWeeks(doc, models.KindGroup)

	if tab := doc.Find("div#session_tab"); tab.Length() > 0 {
		schedule.Session = &models.Session{
			Days: parseDays(tab.Find("div.day"), models.KindGroup, true),
		}
	}

	return schedule, nil
}
