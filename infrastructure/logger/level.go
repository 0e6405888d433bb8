package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is the minimum severity a logger or a log writer lets through.
type Level uint32

// Levels, from most to least verbose. LevelOff silences everything.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

var levelTags = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "CRT", "OFF"}

var levelsByName = map[string]Level{
	"trace": LevelTrace, "trc": LevelTrace,
	"debug": LevelDebug, "dbg": LevelDebug,
	"info": LevelInfo, "inf": LevelInfo,
	"warn": LevelWarn, "wrn": LevelWarn,
	"error": LevelError, "err": LevelError,
	"critical": LevelCritical, "crt": LevelCritical,
	"off": LevelOff,
}

// LevelFromString parses a level by its name or its three-letter tag, case
// insensitively. Unknown names give LevelInfo and false.
func LevelFromString(s string) (Level, bool) {
	level, ok := levelsByName[strings.ToLower(s)]
	if !ok {
		return LevelInfo, false
	}
	return level, true
}

// ParseLevel is LevelFromString returning an error for unknown names.
func ParseLevel(s string) (Level, error) {
	level, ok := LevelFromString(s)
	if !ok {
		return LevelInfo, errors.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// String returns the three-letter tag written in log lines.
func (l Level) String() string {
	if l >= LevelOff {
		return levelTags[LevelOff]
	}
	return levelTags[l]
}
