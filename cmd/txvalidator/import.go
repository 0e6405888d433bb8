package main

import (
	"fmt"

	"github.com/utxogate/utxogate/infrastructure/logger"
)

func importUTXOs(conf *importConfig) error {
	pairs, err := readUTXOSetFile(conf.ActiveFormat, conf.UTXOsFile)
	if err != nil {
		return err
	}

	store, err := openUTXOStore(&conf.LedgerFlags)
	if err != nil {
		return err
	}
	defer store.Close()

	onEnd := logger.LogAndMeasureExecutionTime(log, "importUTXOs")
	err = store.InsertMany(pairs)
	onEnd()
	if err != nil {
		return err
	}

	view, err := store.View()
	if err != nil {
		return err
	}
	defer view.Release()
	commitment, err := view.Commitment()
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d UTXOs\n", len(pairs))
	fmt.Printf("UTXO pool commitment: %s\n", commitment)
	return nil
}
