package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{"Group", KindGroup, true},
		{"Professor", KindProfessor, true},
		{"Invalid", Kind("student"), false},
		{"Empty", Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestEntityRef(t *testing.T) {
	ref := EntityRef{Kind: KindGroup, ID: 3100}
	assert.Equal(t, "group_3100", ref.Identity())
	assert.Equal(t, "https://example.org/timetable/group/3100", ref.URL("https://example.org"))

	prof := EntityRef{Kind: KindProfessor, ID: 13500}
	assert.Equal(t, "professor_13500", prof.Identity())

	// Identities must be stable across calls: the cache slot is addressed
	// by locator, never by a generated id.
	assert.Equal(t, ref.Identity(), ref.Identity())
}
