package main

import (
	"os"
	"time"

	"github.com/zkzk-trade/goapi/base/log"
)

func main() {
	root, release := newRootCmd(loadGateway, time.Now)
	err := root.Execute()
	release()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
