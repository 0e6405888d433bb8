package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/sigverify"
	"github.com/utxogate/utxogate/domain/ledger/txencoding"
	"github.com/utxogate/utxogate/infrastructure/logger"
)

const (
	defaultAppDirName   = ".utxogate"
	defaultDataDirName  = "data"
	defaultLogDirName   = "logs"
	defaultLogFilename  = "utxogate.log"
	defaultErrLogFile   = "utxogate_err.log"
	defaultLogLevel     = "info"
	defaultScheme       = string(sigverify.SchnorrScheme)
	defaultFormat       = string(txencoding.JSONFormat)
	defaultCacheSize    = 10_000
	maxCacheSize        = 10_000_000
	utxoDatabaseDirName = "utxos"
)

// DefaultAppDir is the default home directory for utxogate.
var DefaultAppDir = defaultAppDir()

func defaultAppDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return defaultAppDirName
	}
	return filepath.Join(homeDir, defaultAppDirName)
}

// LedgerFlags holds the options shared by every txvalidator command.
type LedgerFlags struct {
	AppDir    string `short:"b" long:"appdir" description:"Directory to store data"`
	LogDir    string `long:"logdir" description:"Directory to log output"`
	LogLevel  string `short:"d" long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`
	Scheme    string `long:"scheme" description:"Signature scheme of the identities {schnorr, ecdsa}"`
	Format    string `long:"format" description:"Encoding of transaction and UTXO set files {json, cbor}"`
	CacheSize int    `long:"cachesize" description:"Number of UTXO lookups to cache while validating"`

	ActiveScheme sigverify.Scheme
	ActiveFormat txencoding.Format
}

// ResolveLedger fills in defaults for the options that weren't set and
// checks the rest. On failure the error is printed together with the help of
// parser.
func (ledgerFlags *LedgerFlags) ResolveLedger(parser *flags.Parser) error {
	err := ledgerFlags.resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if parser != nil {
			parser.WriteHelp(os.Stderr)
		}
		return err
	}
	return nil
}

func (ledgerFlags *LedgerFlags) resolve() error {
	if ledgerFlags.AppDir == "" {
		ledgerFlags.AppDir = DefaultAppDir
	}
	ledgerFlags.AppDir = cleanAndExpandPath(ledgerFlags.AppDir)

	if ledgerFlags.LogDir == "" {
		ledgerFlags.LogDir = filepath.Join(ledgerFlags.AppDir, defaultLogDirName)
	}
	ledgerFlags.LogDir = cleanAndExpandPath(ledgerFlags.LogDir)

	if ledgerFlags.LogLevel == "" {
		ledgerFlags.LogLevel = defaultLogLevel
	}
	_, err := logger.ParseLevel(ledgerFlags.LogLevel)
	if err != nil {
		return err
	}

	if ledgerFlags.Scheme == "" {
		ledgerFlags.Scheme = defaultScheme
	}
	scheme, err := sigverify.ParseScheme(ledgerFlags.Scheme)
	if err != nil {
		return err
	}
	ledgerFlags.ActiveScheme = scheme

	if ledgerFlags.Format == "" {
		ledgerFlags.Format = defaultFormat
	}
	format, err := txencoding.ParseFormat(ledgerFlags.Format)
	if err != nil {
		return err
	}
	ledgerFlags.ActiveFormat = format

	if ledgerFlags.CacheSize == 0 {
		ledgerFlags.CacheSize = defaultCacheSize
	}
	if ledgerFlags.CacheSize < 0 || ledgerFlags.CacheSize > maxCacheSize {
		return errors.Errorf("the cache size must be between 1 and %d, got %d",
			maxCacheSize, ledgerFlags.CacheSize)
	}

	return nil
}

// CombineLedgerFlags copies into dst every option set in src that dst
// doesn't set itself. It's used to merge options given before a command name
// into the command's own.
func CombineLedgerFlags(dst, src *LedgerFlags) {
	if dst.AppDir == "" {
		dst.AppDir = src.AppDir
	}
	if dst.LogDir == "" {
		dst.LogDir = src.LogDir
	}
	if dst.LogLevel == "" {
		dst.LogLevel = src.LogLevel
	}
	if dst.Scheme == "" {
		dst.Scheme = src.Scheme
	}
	if dst.Format == "" {
		dst.Format = src.Format
	}
	if dst.CacheSize == 0 {
		dst.CacheSize = src.CacheSize
	}
}

// UTXODatabasePath returns the directory of the UTXO pool database.
func (ledgerFlags *LedgerFlags) UTXODatabasePath() string {
	return filepath.Join(ledgerFlags.AppDir, defaultDataDirName, utxoDatabaseDirName)
}

// LogFile returns the path of the main log file.
func (ledgerFlags *LedgerFlags) LogFile() string {
	return filepath.Join(ledgerFlags.LogDir, defaultLogFilename)
}

// ErrLogFile returns the path of the error log file.
func (ledgerFlags *LedgerFlags) ErrLogFile() string {
	return filepath.Join(ledgerFlags.LogDir, defaultErrLogFile)
}

// cleanAndExpandPath expands environment variables and a leading ~ in path
// and cleans the result.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}
