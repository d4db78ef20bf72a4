package models

import (
	"fmt"
	"time"
)

// Kind distinguishes the two timetable entity types published by the site.
type Kind string

const (
	KindGroup     Kind = "group"
	KindProfessor Kind = "professor"
)

// IsValid checks if the kind is one of the published entity types.
func (k Kind) IsValid() bool {
	return k == KindGroup || k == KindProfessor
}

// Origin tags where a schedule's content came from.
type Origin string

const (
	// OriginFresh marks a schedule fetched live with no cached baseline.
	OriginFresh Origin = "fresh"
	// OriginCache marks a schedule whose live fetch matched the cached snapshot.
	OriginCache Origin = "cache"
	// OriginChanged marks a schedule that differs from the cached snapshot.
	// Only schedules with this origin carry Changes.
	OriginChanged Origin = "changed"
)

// Lesson is a single timetable entry. Which of the trailing fields are
// populated depends on the schedule kind: group schedules name the professor,
// professor schedules name the attending groups and the lesson type.
type Lesson struct {
	// Time is the published time label, kept as free text since upstream
	// formats vary between the weekly and session views.
	Time      string   `json:"time"`
	Name      string   `json:"name"`
	Place     string   `json:"place"`
	Subgroup  string   `json:"subgroup,omitempty"`
	Professor string   `json:"professor,omitempty"`
	Groups    []string `json:"groups,omitempty"`
	Type      string   `json:"type,omitempty"`
}

// Day is a named, ordered list of lessons. Order matches the page and is the
// correlation key for diffing.
type Day struct {
	Name    string   `json:"day_name"`
	Lessons []Lesson `json:"lessons"`
}

// Week is one numbered week of the regular timetable.
type Week struct {
	// Number is the published 1-based week number.
	Number int   `json:"week_number"`
	Days   []Day `json:"days"`
}

// Session is the exam-session sub-schedule. Present only for some entities.
type Session struct {
	Days []Day `json:"days"`
}

// Consultation is the consultation-hours sub-schedule (professors only).
type Consultation struct {
	Days []Day `json:"days"`
}

// Change records one field-level difference between two snapshots of the
// same entity.
type Change struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
	// Week is the published week number, omitted for session and
	// consultation changes.
	Week int    `json:"week,omitempty"`
	Day  string `json:"day"`
	Time string `json:"time"`
}

// Schedule is the aggregate timetable for one entity.
type Schedule struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
	// Term is the semester label (groups) or academic year label (professors).
	Term         string        `json:"term"`
	Weeks        []Week        `json:"weeks"`
	Session      *Session      `json:"session,omitempty"`
	Consultation *Consultation `json:"consultation,omitempty"`
	Origin       Origin        `json:"origin"`
	RetrievedAt  time.Time     `json:"retrieved_at"`
	// Changes is populated only when Origin is OriginChanged.
	Changes []Change `json:"changes,omitempty"`
}

// EntityRef identifies one timetable entity by its numeric id on the site.
type EntityRef struct {
	Kind Kind
	ID   int
}

// Identity returns the stable cache identity for this entity. It is derived
// from the source locator so repeated runs address the same snapshot slot.
func (r EntityRef) Identity() string {
	return fmt.Sprintf("%s_%d", r.Kind, r.ID)
}

// URL returns the timetable page locator for this entity.
func (r EntityRef) URL(baseURL string) string {
	return fmt.Sprintf("%s/timetable/%s/%d", baseURL, r.Kind, r.ID)
}
