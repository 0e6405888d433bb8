package main

import (
	"fmt"
	"os"

	"github.com/utxogate/utxogate/infrastructure/config"
	"github.com/utxogate/utxogate/infrastructure/logger"
)

var log = logger.RegisterSubSystem("TXVC")

func initLog(ledgerFlags *config.LedgerFlags) {
	logger.InitLog(ledgerFlags.LogFile(), ledgerFlags.ErrLogFile())
	err := logger.SetLogLevels(ledgerFlags.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
