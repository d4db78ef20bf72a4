package parser

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"timetable-sync/feature/schedule/models"

	"github.com/PuerkitoBio/goquery"
)

// ErrMalformed indicates the page did not contain the expected markup
// anchors. It points at an upstream format change rather than an outage, so
// callers can distinguish it from fetch failures.
var ErrMalformed = errors.New("unexpected page markup")

var groupHrefRe = regexp.MustCompile(`/timetable/group/\d+`)

func load(document []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return doc, nil
}

// pageTitle extracts the trimmed title heading of a timetable page.
func pageTitle(doc *goquery.Document) (string, error) {
	title := doc.Find("h3.text-center.bold").First()
	if title.Length() == 0 {
		return "", fmt.Errorf("%w: missing title element", ErrMalformed)
	}
	return strings.TrimSpace(title.Text()), nil
}

// parseWeeks walks the week tabs and their linked content blocks.
func parseWeeks(doc *goquery.Document, kind models.Kind) []models.Week {
	var weeks []models.Week

	doc.Find("ul.nav.nav-pills.navbar-right.n_week li a").Each(func(_ int, tab *goquery.Selection) {
		fields := strings.Fields(tab.Text())
		if len(fields) == 0 {
			return
		}
		number := 0
		if _, err := fmt.Sscanf(fields[0], "%d", &number); err != nil {
			return
		}

		week := models.Week{Number: number}
		if href, ok := tab.Attr("href"); ok {
			content := doc.Find("div#" + strings.TrimPrefix(href, "#"))
			week.Days = parseDays(content.Find("div[class*='day']"), kind, false)
		}

		weeks = append(weeks, week)
	})

	return weeks
}

// parseDays extracts every day block in the selection, in page order.
// sessionTime switches the time extraction to the session-row layout.
func parseDays(days *goquery.Selection, kind models.Kind, sessionTime bool) []models.Day {
	var out []models.Day

	days.Each(func(_ int, dayDiv *goquery.Selection) {
		nameFields := strings.Fields(dayDiv.Find("div.name.text-center").First().Text())
		if len(nameFields) == 0 {
			return
		}

		day := models.Day{Name: nameFields[0]}
		dayDiv.Find("div.body div.line").Each(func(_ int, line *goquery.Selection) {
			day.Lessons = append(day.Lessons, parseLesson(line, kind, sessionTime))
		})

		out = append(out, day)
	})

	return out
}

func parseLesson(line *goquery.Selection, kind models.Kind, sessionTime bool) models.Lesson {
	lesson := models.Lesson{
		Time: parseTime(line.Find("div.time.text-center").First(), sessionTime),
	}

	discipline := line.Find("div.discipline").First()

	lesson.Name = textOr(discipline.Find("span.name").First(), "N/A")
	lesson.Place = parsePlace(discipline)

	if sub := discipline.Find("li.bold.num_pdgrp").First(); sub.Length() > 0 {
		lesson.Subgroup = strings.TrimSpace(sub.Text())
	}

	switch kind {
	case models.KindGroup:
		lesson.Professor = textOr(discipline.Find("a").First(), "N/A")
	case models.KindProfessor:
		discipline.Find("a").Each(func(_ int, link *goquery.Selection) {
			if href, ok := link.Attr("href"); ok && groupHrefRe.MatchString(href) {
				lesson.Groups = append(lesson.Groups, strings.TrimSpace(link.Text()))
			}
		})
		if li := discipline.Find("li").First(); li.Length() > 0 {
			if text := strings.TrimSpace(li.Text()); strings.Contains(text, "(") {
				part := strings.SplitN(text, "(", 2)[1]
				lesson.Type = strings.TrimSpace(strings.ReplaceAll(part, ")", ""))
			}
		}
	}

	return lesson
}

// parseTime reads the time label of a lesson row. Weekly rows publish the
// label twice (wide and compact layout); session rows publish a date followed
// by a single start time, of which only the time is kept.
func parseTime(timeDiv *goquery.Selection, sessionTime bool) string {
	if timeDiv.Length() == 0 {
		return ""
	}

	if sessionTime {
		inner := timeDiv.Find("div").First()
		if inner.Length() == 0 {
			return ""
		}
		fields := strings.Fields(inner.Text())
		if len(fields) == 0 {
			return ""
		}
		return fields[len(fields)-1]
	}

	if full := timeDiv.Find(".hidden-xs").First(); full.Length() > 0 {
		return strings.ReplaceAll(strings.TrimSpace(full.Text()), "\n", "")
	}
	compact := timeDiv.Find(".visible-xs").First()
	return strings.ReplaceAll(strings.TrimSpace(compact.Text()), "\n", "")
}

func parsePlace(discipline *goquery.Selection) string {
	link := discipline.Find("a[title]").First()
	if link.Length() == 0 {
		return "N/A"
	}
	title, _ := link.Attr("title")
	return title + " / " + link.Text()
}

func textOr(sel *goquery.Selection, fallback string) string {
	if sel.Length() == 0 {
		return fallback
	}
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return fallback
	}
	return text
}
