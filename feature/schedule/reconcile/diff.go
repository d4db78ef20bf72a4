package reconcile

import (
	"strings"

	"timetable-sync/feature/schedule/models"
)

// Field name constants for change records, in declared comparison order.
const (
	FieldTime      = "time"
	FieldName      = "name"
	FieldPlace     = "place"
	FieldSubgroup  = "subgroup"
	FieldProfessor = "professor"
	FieldGroups    = "groups"
	FieldType      = "type"
)

// Diff compares two snapshots of the same entity and returns every
// field-level difference, in walk order: weeks ascending, days and lessons in
// publication order, fields in declared order.
//
// Correlation is positional. Upstream publishes no stable ids for weeks, days
// or lessons, so "same index in publication order" is the only available key.
// Each level is truncated to the shorter of the two lists: a changed week,
// day or lesson count is not itself reported, only field differences within
// the overlapping range. An inserted day therefore desynchronizes the
// remaining comparisons for that run; the next sync re-bases on the new
// snapshot and self-corrects.
func Diff(old, fresh *models.Schedule) []models.Change {
	var changes []models.Change

	for i := 0; i < min(len(old.Weeks), len(fresh.Weeks)); i++ {
		changes = append(changes,
			diffDays(old.Weeks[i].Days, fresh.Weeks[i].Days, old.Weeks[i].Number, old.Kind)...)
	}

	// Session and consultation changes carry no week number.
	if old.Session != nil && fresh.Session != nil {
		changes = append(changes, diffDays(old.Session.Days, fresh.Session.Days, 0, old.Kind)...)
	}
	if old.Consultation != nil && fresh.Consultation != nil {
		changes = append(changes, diffDays(old.Consultation.Days, fresh.Consultation.Days, 0, old.Kind)...)
	}

	return changes
}

func diffDays(old, fresh []models.Day, week int, kind models.Kind) []models.Change {
	var changes []models.Change

	for i := 0; i < min(len(old), len(fresh)); i++ {
		oldDay, freshDay := old[i], fresh[i]
		for j := 0; j < min(len(oldDay.Lessons), len(freshDay.Lessons)); j++ {
			changes = append(changes,
				diffLesson(oldDay.Lessons[j], freshDay.Lessons[j], week, oldDay.Name, kind)...)
		}
	}

	return changes
}

// diffLesson compares one aligned lesson pair. The change record carries the
// old lesson's time label so a reader can locate the slot that changed even
// when the time itself moved.
func diffLesson(old, fresh models.Lesson, week int, day string, kind models.Kind) []models.Change {
	var changes []models.Change

	emit := func(field, oldVal, newVal string) {
		if oldVal == newVal {
			return
		}
		changes = append(changes, models.Change{
			Field: field,
			Old:   oldVal,
			New:   newVal,
			Week:  week,
			Day:   day,
			Time:  old.Time,
		})
	}

	emit(FieldTime, old.Time, fresh.Time)
	emit(FieldName, old.Name, fresh.Name)
	emit(FieldPlace, old.Place, fresh.Place)
	emit(FieldSubgroup, old.Subgroup, fresh.Subgroup)

	switch kind {
	case models.KindGroup:
		emit(FieldProfessor, old.Professor, fresh.Professor)
	case models.KindProfessor:
		emit(FieldGroups, strings.Join(old.Groups, ", "), strings.Join(fresh.Groups, ", "))
		emit(FieldType, old.Type, fresh.Type)
	}

	return changes
}
