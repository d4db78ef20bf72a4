package reconcile

import (
	"testing"

	"timetable-sync/feature/schedule/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupSchedule() *models.Schedule {
	return &models.Schedule{
		Kind: models.KindGroup,
		Name: "БПИ23-01",
		Weeks: []models.Week{
			{
				Number: 1,
				Days: []models.Day{
					{
						Name: "Monday",
						Lessons: []models.Lesson{
							{Time: "09:00", Name: "Math", Place: "L 301", Subgroup: "1", Professor: "Ivanov"},
							{Time: "10:45", Name: "History", Place: "L 305", Professor: "Petrov"},
						},
					},
				},
			},
			{
				Number: 2,
				Days: []models.Day{
					{
						Name: "Tuesday",
						Lessons: []models.Lesson{
							{Time: "11:30", Name: "Physics", Place: "N 201", Professor: "Sidorov"},
						},
					},
				},
			},
		},
		Session: &models.Session{
			Days: []models.Day{
				{
					Name: "Monday",
					Lessons: []models.Lesson{
						{Time: "11:15", Name: "Exam", Place: "L 301", Professor: "Ivanov"},
					},
				},
			},
		},
	}
}

func TestDiff_IdenticalSchedulesAreEmpty(t *testing.T) {
	assert.Empty(t, Diff(groupSchedule(), groupSchedule()))
}

func TestDiff_SingleFieldChange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Schedule)
		want   models.Change
	}{
		{
			name:   "Lesson Renamed",
			mutate: func(s *models.Schedule) { s.Weeks[0].Days[0].Lessons[0].Name = "Algebra" },
			want:   models.Change{Field: FieldName, Old: "Math", New: "Algebra", Week: 1, Day: "Monday", Time: "09:00"},
		},
		{
			name:   "Lesson Moved",
			mutate: func(s *models.Schedule) { s.Weeks[0].Days[0].Lessons[0].Time = "09:15" },
			want:   models.Change{Field: FieldTime, Old: "09:00", New: "09:15", Week: 1, Day: "Monday", Time: "09:00"},
		},
		{
			name:   "Place Changed",
			mutate: func(s *models.Schedule) { s.Weeks[1].Days[0].Lessons[0].Place = "N 202" },
			want:   models.Change{Field: FieldPlace, Old: "N 201", New: "N 202", Week: 2, Day: "Tuesday", Time: "11:30"},
		},
		{
			name:   "Subgroup Dropped",
			mutate: func(s *models.Schedule) { s.Weeks[0].Days[0].Lessons[0].Subgroup = "" },
			want:   models.Change{Field: FieldSubgroup, Old: "1", New: "", Week: 1, Day: "Monday", Time: "09:00"},
		},
		{
			name:   "Professor Replaced",
			mutate: func(s *models.Schedule) { s.Weeks[0].Days[0].Lessons[1].Professor = "Smirnov" },
			want:   models.Change{Field: FieldProfessor, Old: "Petrov", New: "Smirnov", Week: 1, Day: "Monday", Time: "10:45"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := groupSchedule()
			fresh := groupSchedule()
			tt.mutate(fresh)

			changes := Diff(old, fresh)
			require.Len(t, changes, 1)
			assert.Equal(t, tt.want, changes[0])
		})
	}
}

func TestDiff_SessionChangeOmitsWeek(t *testing.T) {
	old := groupSchedule()
	fresh := groupSchedule()
	fresh.Session.Days[0].Lessons[0].Place = "N 101"

	changes := Diff(old, fresh)
	require.Len(t, changes, 1)
	assert.Equal(t, models.Change{
		Field: FieldPlace, Old: "L 301", New: "N 101",
		Week: 0, Day: "Monday", Time: "11:15",
	}, changes[0])
}

func TestDiff_ProfessorKindFields(t *testing.T) {
	old := &models.Schedule{
		Kind: models.KindProfessor,
		Weeks: []models.Week{
			{
				Number: 1,
				Days: []models.Day{
					{
						Name: "Tuesday",
						Lessons: []models.Lesson{
							{Time: "11:30", Name: "Physics", Place: "N 201", Groups: []string{"БПИ23-01"}, Type: "Лк"},
						},
					},
				},
			},
		},
	}
	fresh := &models.Schedule{
		Kind: models.KindProfessor,
		Weeks: []models.Week{
			{
				Number: 1,
				Days: []models.Day{
					{
						Name: "Tuesday",
						Lessons: []models.Lesson{
							{Time: "11:30", Name: "Physics", Place: "N 201", Groups: []string{"БПИ23-01", "БПИ23-02"}, Type: "Пр"},
						},
					},
				},
			},
		},
	}

	changes := Diff(old, fresh)
	require.Len(t, changes, 2)
	assert.Equal(t, FieldGroups, changes[0].Field)
	assert.Equal(t, "БПИ23-01", changes[0].Old)
	assert.Equal(t, "БПИ23-01, БПИ23-02", changes[0].New)
	assert.Equal(t, FieldType, changes[1].Field)
}

func TestDiff_TruncatesToOverlap(t *testing.T) {
	t.Run("Extra Week Not Reported", func(t *testing.T) {
		old := groupSchedule()
		fresh := groupSchedule()
		fresh.Weeks = append(fresh.Weeks, models.Week{Number: 3, Days: []models.Day{{Name: "Friday"}}})

		assert.Empty(t, Diff(old, fresh))
	})

	t.Run("Removed Lesson Not Reported", func(t *testing.T) {
		old := groupSchedule()
		fresh := groupSchedule()
		fresh.Weeks[0].Days[0].Lessons = fresh.Weeks[0].Days[0].Lessons[:1]

		assert.Empty(t, Diff(old, fresh))
	})

	t.Run("Missing Session Side Skipped", func(t *testing.T) {
		old := groupSchedule()
		fresh := groupSchedule()
		fresh.Session = nil

		assert.Empty(t, Diff(old, fresh))
	})
}

func TestDiff_MultipleChangesKeepWalkOrder(t *testing.T) {
	old := groupSchedule()
	fresh := groupSchedule()
	fresh.Weeks[0].Days[0].Lessons[0].Name = "Algebra"
	fresh.Weeks[1].Days[0].Lessons[0].Place = "N 205"

	changes := Diff(old, fresh)
	require.Len(t, changes, 2)
	assert.Equal(t, 1, changes[0].Week)
	assert.Equal(t, 2, changes[1].Week)
}
