package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/infrastructure/logger"
)

// errInvalidTransaction is returned by commands that found the transaction
// invalid after having reported why.
var errInvalidTransaction = errors.New("the transaction is invalid")

func main() {
	subCmd, conf := parseCommandLine()

	var err error
	switch subCmd {
	case importSubCmd:
		importConf := conf.(*importConfig)
		initLog(&importConf.LedgerFlags)
		err = importUTXOs(importConf)
	case validateSubCmd:
		validateConf := conf.(*validateConfig)
		initLog(&validateConf.LedgerFlags)
		err = validate(validateConf)
	case genKeyPairSubCmd:
		err = genKeyPair(conf.(*genKeyPairConfig))
	case signSubCmd:
		signConf := conf.(*signConfig)
		initLog(&signConf.LedgerFlags)
		err = sign(signConf)
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if logger.BackendLog.IsRunning() {
		logger.BackendLog.Close()
	}

	if errors.Is(err, errInvalidTransaction) {
		os.Exit(1)
	}
	if err != nil {
		printErrorAndExit(err)
	}
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
