package utxopool

import "github.com/utxogate/utxogate/infrastructure/logger"

var log = logger.RegisterSubSystem("UTXP")
