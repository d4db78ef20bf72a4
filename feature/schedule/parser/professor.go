package parser

import (
	"fmt"
	"strings"
	"time"

	"timetable-sync/feature/schedule/models"

	"github.com/PuerkitoBio/goquery"
)

// consultationName is the fixed lesson name for consultation-hours rows; the
// page does not publish one.
const consultationName = "Консультация"

// ParseProfessor extracts a professor schedule from a timetable page.
// The page title has the form: Иванов Иван Иванович - 2023-2024 учебный год.
func ParseProfessor(document []byte) (*models.Schedule, error) {
	doc, err := load(document)
	if err != nil {
		return nil, err
	}

	title, err := pageTitle(doc)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(title, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: unexpected title format: %s", ErrMalformed, title)
	}

	schedule := &models.Schedule{
		Kind:        models.KindProfessor,
		Name:        strings.TrimSpace(parts[0]),
		Term:        strings.TrimSpace(parts[1]),
		Origin:      models.OriginFresh,
		RetrievedAt: time.Now(),
	}

	schedule.Weeks = parseWeeks(doc, models.KindProfessor)

	if tab := doc.Find("div#session_tab"); tab.Length() > 0 {
		schedule.Session = &models.Session{
			Days: parseDays(tab.Find("div.day"), models.KindProfessor, true),
		}
	}

	if tab := doc.Find("div#consultation_tab"); tab.Length() > 0 {
		schedule.Consultation = &models.Consultation{
			Days: parseConsultationDays(tab.Find("div.day")),
		}
	}

	return schedule, nil
}

// parseConsultationDays handles the consultation tab, whose rows carry only a
// time label and a place.
func parseConsultationDays(days *goquery.Selection) []models.Day {
	var out []models.Day

	days.Each(func(_ int, dayDiv *goquery.Selection) {
		nameFields := strings.Fields(dayDiv.Find("div.name.text-center").First().Text())
		if len(nameFields) == 0 {
			return
		}

		day := models.Day{Name: nameFields[0]}
		dayDiv.Find("div.body div.line").Each(func(_ int, line *goquery.Selection) {
			day.Lessons = append(day.Lessons, models.Lesson{
				Time:  parseTime(line.Find("div.time.text-center").First(), false),
				Name:  consultationName,
				Place: parsePlace(line.Find("div.discipline").First()),
			})
		})

		out = append(out, day)
	})

	return out
}
