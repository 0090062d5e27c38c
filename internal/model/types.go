// Package model defines shared data structures.
package model

import "time"

// Session setting limits.
const (
	MinWordLength = 2
	MaxWordLength = 15
	MinMaxGuesses = 1
	MaxMaxGuesses = 20
)

// Config defines session settings.
type Config struct {
	WordLength int
	MaxGuesses int
	Show       int
	WordList   string
}

// HistoryConfig defines filters for the session log.
type HistoryConfig struct {
	WordLength int
	Since      *time.Time
	Last       int
}

// SessionRecord captures a finished solving session.
type SessionRecord struct {
	UUID         string
	StartedAt    time.Time
	EndedAt      time.Time
	WordLength   int
	MaxGuesses   int
	WordListPath string
	CorpusSize   int
	Candidates   int
	Solved       bool
	Solution     string
	Rows         []string
}

// SessionAggregate summarizes a logged session for reporting.
type SessionAggregate struct {
	SessionID  int64
	UUID       string
	EndedAt    time.Time
	WordLength int
	Guesses    int
	CorpusSize int
	Candidates int
	Solved     bool
	Solution   string
}
