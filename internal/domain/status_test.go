package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(sec int64) Status {
	return Status{Author: "alice", Text: "hi", CreatedAt: time.Unix(sec, 0)}
}

func TestChanged(t *testing.T) {
	tests := []struct {
		name    string
		prev    Timeline
		hasPrev bool
		next    Timeline
		want    bool
	}{
		{name: "no previous timeline", prev: nil, hasPrev: false, next: Timeline{at(100)}, want: true},
		{name: "no previous, empty next", prev: nil, hasPrev: false, next: Timeline{}, want: true},
		{name: "previous empty", prev: Timeline{}, hasPrev: true, next: Timeline{at(100)}, want: true},
		{name: "identical timestamps", prev: Timeline{at(100)}, hasPrev: true, next: Timeline{at(100)}, want: false},
		{name: "new head", prev: Timeline{at(100)}, hasPrev: true, next: Timeline{at(200), at(100)}, want: true},
		{name: "next shorter with matching prefix", prev: Timeline{at(200), at(100)}, hasPrev: true, next: Timeline{at(200)}, want: false},
		{name: "both empty", prev: Timeline{}, hasPrev: true, next: Timeline{}, want: false},
		{name: "difference in tail", prev: Timeline{at(300), at(200)}, hasPrev: true, next: Timeline{at(300), at(250)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Changed(tt.prev, tt.hasPrev, tt.next))
		})
	}
}

func TestChanged_IgnoresTextEdits(t *testing.T) {
	prev := Timeline{at(100)}
	edited := at(100)
	edited.Text = "edited"

	assert.False(t, Changed(prev, true, Timeline{edited}))
}

func TestSession_Owns(t *testing.T) {
	s := Session{Login: "alice"}
	assert.True(t, s.Owns(Status{Author: "alice"}))
	assert.False(t, s.Owns(Status{Author: "bob"}))

	s.ScreenName = "Alice_"
	assert.True(t, s.Owns(Status{Author: "Alice_"}))
	assert.False(t, Session{}.Owns(Status{}))
}

func TestCredentials_Complete(t *testing.T) {
	assert.True(t, Credentials{Login: "a", Password: "b"}.Complete())
	assert.False(t, Credentials{Login: "a"}.Complete())
	assert.False(t, Credentials{}.Complete())
}
