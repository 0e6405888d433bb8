package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/sigverify"
)

func sign(conf *signConfig) error {
	tx, err := readTransactionFile(conf.ActiveFormat, conf.TransactionFile)
	if err != nil {
		return err
	}

	privateKeyHex := conf.PrivateKey
	if privateKeyHex == "" {
		privateKeyHex, err = promptPrivateKey("Private key (hex): ")
		if err != nil {
			return err
		}
	}
	privateKey, err := hex.DecodeString(strings.TrimSpace(privateKeyHex))
	if err != nil {
		return errors.Wrap(err, "The private key is not hex encoded")
	}

	signer, err := sigverify.NewSigner(conf.ActiveScheme, privateKey)
	if err != nil {
		return err
	}

	signed, err := sigverify.SignTransaction(tx, signer)
	if err != nil {
		return err
	}
	if signed == 0 {
		return errors.Errorf("No input of transaction %s is owned by %s", tx.ID, signer.Identity())
	}

	outputFile := conf.OutputFile
	if outputFile == "" {
		outputFile = conf.TransactionFile
	}
	err = writeTransactionFile(conf.ActiveFormat, outputFile, tx)
	if err != nil {
		return err
	}

	fmt.Printf("Signed %d of %d inputs of transaction %s\n", signed, len(tx.Inputs), tx.ID)
	fmt.Printf("Signed transaction written to %s\n", outputFile)
	return nil
}
