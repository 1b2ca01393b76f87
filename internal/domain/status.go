package domain

import "time"

// Status is a single posted update as returned by one timeline fetch.
type Status struct {
	Author    string
	Text      string // HTML entities already decoded
	CreatedAt time.Time
	AvatarURL string
}

// Timeline is the ordered result of one fetch, newest first.
type Timeline []Status

// Changed reports whether next must be rendered in place of prev.
//
// Statuses are compared index by index on CreatedAt only. Entries of prev past
// len(next) are never looked at, so removals and edits further down the list go
// unnoticed.
func Changed(prev Timeline, hasPrev bool, next Timeline) bool {
	if !hasPrev {
		return true
	}
	for i, s := range next {
		if i >= len(prev) {
			return true
		}
		if !s.CreatedAt.Equal(prev[i].CreatedAt) {
			return true
		}
	}
	return false
}

// Head returns the newest status, if any.
func (t Timeline) Head() (Status, bool) {
	if len(t) == 0 {
		return Status{}, false
	}
	return t[0], true
}

type Credentials struct {
	Login    string `yaml:"user"`
	Password string `yaml:"password"`
}

// Complete reports whether both login and password are set.
func (c Credentials) Complete() bool {
	return c.Login != "" && c.Password != ""
}

// Session is an authenticated account.
type Session struct {
	Login      string
	Password   string
	ScreenName string
}

// Owns reports whether s was posted by the session's account.
func (s Session) Owns(st Status) bool {
	name := s.ScreenName
	if name == "" {
		name = s.Login
	}
	return name != "" && st.Author == name
}
