package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
	"github.com/utxogate/utxogate/domain/ledger/txencoding"
	"github.com/utxogate/utxogate/domain/ledger/utxopool"
	"github.com/utxogate/utxogate/infrastructure/config"
)

func readTransactionFile(format txencoding.Format, path string) (*externalapi.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read the transaction from %s", path)
	}
	tx, err := txencoding.DecodeTransaction(format, data)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not decode the transaction in %s", path)
	}
	return tx, nil
}

func writeTransactionFile(format txencoding.Format, path string, tx *externalapi.Transaction) error {
	data, err := txencoding.EncodeTransaction(format, tx)
	if err != nil {
		return err
	}
	err = os.WriteFile(path, data, 0600)
	if err != nil {
		return errors.Wrapf(err, "Could not write the transaction to %s", path)
	}
	return nil
}

func readUTXOSetFile(format txencoding.Format, path string) ([]*externalapi.UTXOIDAndUTXOPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read the UTXO set from %s", path)
	}
	pairs, err := txencoding.DecodeUTXOSet(format, data)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not decode the UTXO set in %s", path)
	}
	return pairs, nil
}

func openUTXOStore(ledgerFlags *config.LedgerFlags) (*utxopool.Store, error) {
	path := ledgerFlags.UTXODatabasePath()
	err := os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create the data directory for %s", path)
	}
	log.Debugf("Opening the UTXO pool at %s", path)
	return utxopool.Open(path)
}
