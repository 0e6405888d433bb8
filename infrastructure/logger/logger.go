package logger

import (
	"sync/atomic"
)

type logEntry struct {
	line  []byte
	level Level
}

// Logger writes the entries of one subsystem to a Backend, tagged with the
// subsystem name. Its level can be changed at any time.
type Logger struct {
	level   Level // atomic
	tag     string
	backend *Backend
}

// Tracef logs at LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.write(LevelTrace, format, args)
}

// Debugf logs at LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.write(LevelDebug, format, args)
}

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(LevelInfo, format, args)
}

// Warnf logs at LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(LevelWarn, format, args)
}

// Errorf logs at LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(LevelError, format, args)
}

// Criticalf logs at LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.write(LevelCritical, format, args)
}

func (l *Logger) write(level Level, format string, args []interface{}) {
	if level < l.Level() {
		return
	}
	l.backend.enqueue(level, l.tag, format, args)
}

// Level returns the current level of the logger.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.level)))
}

// SetLevel changes the level of the logger.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32((*uint32)(&l.level), uint32(level))
}

// Tag returns the subsystem tag of the logger.
func (l *Logger) Tag() string {
	return l.tag
}
