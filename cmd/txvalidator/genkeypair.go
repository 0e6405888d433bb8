package main

import (
	"encoding/hex"
	"fmt"

	"github.com/utxogate/utxogate/domain/ledger/sigverify"
)

func genKeyPair(conf *genKeyPairConfig) error {
	signer, err := sigverify.GenerateSigner(conf.ActiveScheme)
	if err != nil {
		return err
	}

	fmt.Printf("Scheme: %s\n", signer.Scheme())
	fmt.Printf("Private key (hex): %s\n", hex.EncodeToString(signer.PrivateKey()))
	fmt.Printf("Identity: %s\n", signer.Identity())
	return nil
}
