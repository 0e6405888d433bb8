package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

// CallsiteMode selects whether log lines carry the file and line they were
// logged from.
type CallsiteMode int

// Callsite modes. The default is read from the LOGCALLSITE environment
// variable ("short" or "long").
const (
	CallsiteNone CallsiteMode = iota
	CallsiteShort
	CallsiteLong
)

func callsiteModeFromEnv() CallsiteMode {
	switch os.Getenv("LOGCALLSITE") {
	case "short":
		return CallsiteShort
	case "long":
		return CallsiteLong
	default:
		return CallsiteNone
	}
}

const (
	defaultRotateThresholdKB = 10 * 1000
	defaultMaxRolls          = 3

	// frames between runtime.Caller in callsite and the code that logged
	callsiteSkip = 5
)

type backendState int

const (
	backendIdle backendState = iota
	backendRunning
	backendClosed
)

type sink struct {
	io.WriteCloser
	level Level
}

// Backend serializes the entries of all the subsystem loggers created from
// it onto a set of sinks, each with its own minimum level. Entries are
// written by a single goroutine started by Run and stopped by Close.
type Backend struct {
	callsite CallsiteMode
	sinks    []sink
	entries  chan logEntry
	drained  chan struct{}

	stateLock sync.RWMutex
	state     backendState
}

// BackendOption configures a Backend.
type BackendOption func(*Backend)

// WithCallsite overrides the callsite mode read from the environment.
func WithCallsite(mode CallsiteMode) BackendOption {
	return func(b *Backend) {
		b.callsite = mode
	}
}

// NewBackend returns a Backend with no sinks. Add sinks, then call Run.
func NewBackend(options ...BackendOption) *Backend {
	b := &Backend{
		callsite: callsiteModeFromEnv(),
		entries:  make(chan logEntry),
		drained:  make(chan struct{}),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// AddLogWriter adds w as a sink for entries at level and above. Sinks can
// only be added before Run.
func (b *Backend) AddLogWriter(w io.WriteCloser, level Level) error {
	b.stateLock.Lock()
	defer b.stateLock.Unlock()

	if b.state != backendIdle {
		return errors.New("cannot add a log sink after the logger was started")
	}
	b.sinks = append(b.sinks, sink{WriteCloser: w, level: level})
	return nil
}

// AddLogFile adds logFile, rotated every 10MB with 3 rolls kept, as a sink for
// entries at level and above. Missing directories are created.
func (b *Backend) AddLogFile(logFile string, level Level) error {
	return b.AddRotatingLogFile(logFile, level, defaultRotateThresholdKB, defaultMaxRolls)
}

// AddRotatingLogFile is AddLogFile with explicit rotation settings.
func (b *Backend) AddRotatingLogFile(logFile string, level Level, thresholdKB int64, maxRolls int) error {
	logDir := filepath.Dir(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return errors.Wrapf(err, "failed to create log directory %s", logDir)
	}
	logRotator, err := rotator.New(logFile, thresholdKB, false, maxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to create a rotator for %s", logFile)
	}
	return b.AddLogWriter(logRotator, level)
}

// Run starts writing entries. A Backend can be run once.
func (b *Backend) Run() error {
	b.stateLock.Lock()
	defer b.stateLock.Unlock()

	if b.state != backendIdle {
		return errors.New("the logger was already started")
	}
	b.state = backendRunning
	go b.drain()
	return nil
}

func (b *Backend) drain() {
	defer close(b.drained)
	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Fatal error in the logger goroutine: %+v\n%s\n", err, debug.Stack())
		}
	}()

	for entry := range b.entries {
		for _, s := range b.sinks {
			if entry.level >= s.level {
				_, _ = s.Write(entry.line)
			}
		}
	}
}

// IsRunning returns whether entries are currently being written.
func (b *Backend) IsRunning() bool {
	b.stateLock.RLock()
	defer b.stateLock.RUnlock()
	return b.state == backendRunning
}

// Close writes the entries already logged, then closes every sink. Entries
// logged after Close are dropped.
func (b *Backend) Close() {
	b.stateLock.Lock()
	wasRunning := b.state == backendRunning
	b.state = backendClosed
	if wasRunning {
		close(b.entries)
	}
	b.stateLock.Unlock()

	if wasRunning {
		<-b.drained
	}
	for _, s := range b.sinks {
		_ = s.Close()
	}
}

// Logger returns the logger of the subsystem tag. It starts at LevelOff.
func (b *Backend) Logger(tag string) *Logger {
	return &Logger{level: LevelOff, tag: tag, backend: b}
}

// enqueue hands an entry to the writing goroutine, or drops it when the
// backend isn't running. The read lock keeps Close from closing entries
// under a pending send.
func (b *Backend) enqueue(level Level, tag string, format string, args []interface{}) {
	b.stateLock.RLock()
	defer b.stateLock.RUnlock()

	if b.state != backendRunning {
		return
	}
	b.entries <- logEntry{line: b.format(level, tag, format, args), level: level}
}

// format renders "2006-01-02 15:04:05.000 [LVL] TAG file:line: message\n".
func (b *Backend) format(level Level, tag string, format string, args []interface{}) []byte {
	var buf bytes.Buffer
	buf.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	buf.WriteString(" [")
	buf.WriteString(level.String())
	buf.WriteString("] ")
	buf.WriteString(tag)
	if b.callsite != CallsiteNone {
		buf.WriteByte(' ')
		buf.WriteString(b.callsiteString())
	}
	buf.WriteString(": ")
	_, _ = fmt.Fprintf(&buf, format, args...)
	if !bytes.HasSuffix(buf.Bytes(), []byte{'\n'}) {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func (b *Backend) callsiteString() string {
	_, file, line, ok := runtime.Caller(callsiteSkip)
	if !ok {
		return "???:0"
	}
	if b.callsite == CallsiteShort {
		file = filepath.Base(file)
	}
	return file + ":" + strconv.Itoa(line)
}
