package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/infrastructure/config"
)

const (
	importSubCmd     = "import"
	validateSubCmd   = "validate"
	genKeyPairSubCmd = "genkeypair"
	signSubCmd       = "sign"
)

type configFlags struct {
	config.LedgerFlags
}

type importConfig struct {
	UTXOsFile string `long:"utxos" short:"u" description:"File holding the UTXO set to add to the pool" required:"true"`
	config.LedgerFlags
}

type validateConfig struct {
	TransactionFile string `long:"tx" short:"t" description:"File holding the transaction to validate" required:"true"`
	Apply           bool   `long:"apply" description:"Spend the inputs and add the outputs to the pool if the transaction is valid"`
	config.LedgerFlags
}

type genKeyPairConfig struct {
	config.LedgerFlags
}

type signConfig struct {
	TransactionFile string `long:"tx" short:"t" description:"File holding the transaction to sign" required:"true"`
	OutputFile      string `long:"out" short:"o" description:"File to write the signed transaction to (defaults to overwriting --tx)"`
	PrivateKey      string `long:"private-key" short:"k" description:"The private key of the signer (encoded in hex). Prompted for if omitted"`
	config.LedgerFlags
}

func parseCommandLine() (subCommand string, conf interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	importConf := &importConfig{}
	parser.AddCommand(importSubCmd, "Adds a UTXO set to the pool",
		"Adds every UTXO of the given file to the pool, atomically", importConf)

	validateConf := &validateConfig{}
	parser.AddCommand(validateSubCmd, "Validates a transaction against the pool",
		"Validates a transaction against a snapshot of the pool and prints every rule it breaks", validateConf)

	genKeyPairConf := &genKeyPairConfig{}
	parser.AddCommand(genKeyPairSubCmd, "Generates a key pair",
		"Generates a private key and prints it together with the identity UTXOs are assigned to", genKeyPairConf)

	signConf := &signConfig{}
	parser.AddCommand(signSubCmd, "Signs a transaction",
		"Signs every input of the transaction owned by the identity of the private key", signConf)

	_, err := parser.Parse()

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	var ledgerFlags *config.LedgerFlags
	switch parser.Command.Active.Name {
	case importSubCmd:
		ledgerFlags, conf = &importConf.LedgerFlags, importConf
	case validateSubCmd:
		ledgerFlags, conf = &validateConf.LedgerFlags, validateConf
	case genKeyPairSubCmd:
		ledgerFlags, conf = &genKeyPairConf.LedgerFlags, genKeyPairConf
	case signSubCmd:
		ledgerFlags, conf = &signConf.LedgerFlags, signConf
	}

	config.CombineLedgerFlags(ledgerFlags, &cfg.LedgerFlags)
	err = ledgerFlags.ResolveLedger(parser)
	if err != nil {
		os.Exit(1)
	}

	return parser.Command.Active.Name, conf
}
