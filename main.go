package main

import (
	"os"

	"github.com/MMN3003/lightcone/src/cli"
)

//	@title			Lightcone API
//	@version		1.0
//	@description	Read-only deployment table and unit conversions for the Loopring exchange on Ethereum mainnet.
//	@BasePath		/
func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
