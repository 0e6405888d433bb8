package logger

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// BackendLog is the backend every subsystem logger of the process writes to.
var BackendLog = NewBackend()

var (
	subsystemLoggers     = make(map[string]*Logger)
	subsystemLoggersLock sync.Mutex
)

// RegisterSubSystem returns the logger of the given subsystem, creating it on
// first use.
func RegisterSubSystem(subsystem string) *Logger {
	subsystemLoggersLock.Lock()
	defer subsystemLoggersLock.Unlock()

	logger, exists := subsystemLoggers[subsystem]
	if !exists {
		logger = BackendLog.Logger(subsystem)
		subsystemLoggers[subsystem] = logger
	}
	return logger
}

// Get returns the logger of a registered subsystem.
func Get(subsystem string) (logger *Logger, ok bool) {
	subsystemLoggersLock.Lock()
	defer subsystemLoggersLock.Unlock()

	logger, ok = subsystemLoggers[subsystem]
	return logger, ok
}

// InitLog attaches the log file and the error log file to BackendLog, adds
// stdout at info level and starts the backend.
func InitLog(logFile, errLogFile string) {
	err := BackendLog.AddLogFile(logFile, LevelTrace)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s", logFile, LevelTrace, err)
		os.Exit(1)
	}
	err = BackendLog.AddLogFile(errLogFile, LevelWarn)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s", errLogFile, LevelWarn, err)
		os.Exit(1)
	}
	err = BackendLog.AddLogWriter(stdoutWriter{}, LevelInfo)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error adding stdout to the loggerfor level %s: %s", LevelInfo, err)
		os.Exit(1)
	}
	err = BackendLog.Run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error starting the logger: %s ", err)
		os.Exit(1)
	}
}

// stdoutWriter keeps Backend.Close from closing the process stdout.
type stdoutWriter struct{}

func (stdoutWriter) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdoutWriter) Close() error { return nil }

// SetLogLevel sets the logging level of a single subsystem. Unknown
// subsystems are ignored.
func SetLogLevel(subsystemID string, logLevel string) {
	logger, ok := Get(subsystemID)
	if !ok {
		return
	}
	level, _ := LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets the logging level of every registered subsystem.
func SetLogLevels(logLevel string) error {
	level, ok := LevelFromString(logLevel)
	if !ok {
		return errors.Errorf("the specified debug level [%s] is invalid", logLevel)
	}

	subsystemLoggersLock.Lock()
	defer subsystemLoggersLock.Unlock()
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}

// SupportedSubsystems returns a sorted slice of the registered subsystems.
func SupportedSubsystems() []string {
	subsystemLoggersLock.Lock()
	defer subsystemLoggersLock.Unlock()

	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}
