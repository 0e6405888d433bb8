package sigverify

import "github.com/utxogate/utxogate/infrastructure/logger"

var log = logger.RegisterSubSystem("SIGV")
