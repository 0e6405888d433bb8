package main

import (
	"fmt"

	"github.com/utxogate/utxogate/domain/ledger/sigverify"
	"github.com/utxogate/utxogate/domain/ledger/transactionvalidator"
	"github.com/utxogate/utxogate/domain/ledger/utxopool"
)

func validate(conf *validateConfig) error {
	tx, err := readTransactionFile(conf.ActiveFormat, conf.TransactionFile)
	if err != nil {
		return err
	}

	verifier, err := sigverify.NewVerifier(conf.ActiveScheme)
	if err != nil {
		return err
	}

	store, err := openUTXOStore(&conf.LedgerFlags)
	if err != nil {
		return err
	}
	defer store.Close()

	view, err := store.View()
	if err != nil {
		return err
	}
	defer view.Release()

	validator := transactionvalidator.New(utxopool.NewCachedView(view, conf.CacheSize), verifier)
	result, err := validator.ValidateTransaction(tx)
	if err != nil {
		return err
	}

	if !result.Valid() {
		for _, validationErr := range result.Errors() {
			fmt.Println(validationErr.Error())
		}
		log.Infof("Transaction %s was rejected with %d errors", tx.ID, len(result.Errors()))
		return errInvalidTransaction
	}

	fmt.Printf("Transaction %s is valid\n", tx.ID)
	if !conf.Apply {
		return nil
	}

	// Another writer may have spent the inputs since the view was taken;
	// ApplyTransaction fails on inputs missing from the pool.
	err = store.ApplyTransaction(tx)
	if err != nil {
		return err
	}
	fmt.Printf("Applied transaction %s to the UTXO pool\n", tx.ID)
	return nil
}
