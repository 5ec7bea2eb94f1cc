// Command rayshot exercises the raylib binding from the command line:
// screenshots, screen captures, text loading, random values and URLs.
package main

import (
	"runtime"

	"github.com/charmbracelet/log"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal("rayshot", "err", err)
	}
}
