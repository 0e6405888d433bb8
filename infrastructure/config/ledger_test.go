package config

import (
	"path/filepath"
	"testing"

	"github.com/utxogate/utxogate/domain/ledger/sigverify"
	"github.com/utxogate/utxogate/domain/ledger/txencoding"
)

func TestResolveLedgerDefaults(t *testing.T) {
	appDir := t.TempDir()
	ledgerFlags := &LedgerFlags{AppDir: appDir}
	err := ledgerFlags.ResolveLedger(nil)
	if err != nil {
		t.Fatalf("ResolveLedger: %s", err)
	}

	if ledgerFlags.LogDir != filepath.Join(appDir, defaultLogDirName) {
		t.Fatalf("unexpected log dir %s", ledgerFlags.LogDir)
	}
	if ledgerFlags.LogLevel != defaultLogLevel {
		t.Fatalf("unexpected log level %s", ledgerFlags.LogLevel)
	}
	if ledgerFlags.ActiveScheme != sigverify.SchnorrScheme {
		t.Fatalf("unexpected scheme %s", ledgerFlags.ActiveScheme)
	}
	if ledgerFlags.ActiveFormat != txencoding.JSONFormat {
		t.Fatalf("unexpected format %s", ledgerFlags.ActiveFormat)
	}
	if ledgerFlags.CacheSize != defaultCacheSize {
		t.Fatalf("unexpected cache size %d", ledgerFlags.CacheSize)
	}
	if ledgerFlags.UTXODatabasePath() != filepath.Join(appDir, "data", "utxos") {
		t.Fatalf("unexpected database path %s", ledgerFlags.UTXODatabasePath())
	}
	if ledgerFlags.LogFile() != filepath.Join(appDir, "logs", "utxogate.log") {
		t.Fatalf("unexpected log file %s", ledgerFlags.LogFile())
	}
}

func TestResolveLedgerErrors(t *testing.T) {
	tests := []struct {
		name        string
		ledgerFlags LedgerFlags
		expectError bool
	}{
		{"ecdsa and cbor", LedgerFlags{Scheme: "ECDSA", Format: "cbor", LogLevel: "trace", CacheSize: 5}, false},
		{"bad log level", LedgerFlags{LogLevel: "loud"}, true},
		{"bad scheme", LedgerFlags{Scheme: "rsa"}, true},
		{"bad format", LedgerFlags{Format: "yaml"}, true},
		{"negative cache size", LedgerFlags{CacheSize: -1}, true},
		{"cache size too large", LedgerFlags{CacheSize: maxCacheSize + 1}, true},
	}

	for _, test := range tests {
		ledgerFlags := test.ledgerFlags
		ledgerFlags.AppDir = t.TempDir()
		err := ledgerFlags.resolve()
		if (err != nil) != test.expectError {
			t.Fatalf("%s: expected error: %t, got %v", test.name, test.expectError, err)
		}
	}
}

func TestCombineLedgerFlags(t *testing.T) {
	global := &LedgerFlags{AppDir: "/global", Scheme: "ecdsa", CacheSize: 7}
	command := &LedgerFlags{AppDir: "/command", Format: "cbor"}
	CombineLedgerFlags(command, global)

	expected := LedgerFlags{AppDir: "/command", Scheme: "ecdsa", Format: "cbor", CacheSize: 7}
	if *command != expected {
		t.Fatalf("unexpected combined flags %+v", *command)
	}
}

func TestCleanAndExpandPath(t *testing.T) {
	t.Setenv("UTXOGATE_TEST_DIR", "/tmp/utxogate")
	if got := cleanAndExpandPath("$UTXOGATE_TEST_DIR/./logs/"); got != "/tmp/utxogate/logs" {
		t.Fatalf("unexpected path %s", got)
	}
}
