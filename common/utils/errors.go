package utils

import (
	"fmt"
	"log"

	"github.com/ttacon/chalk"
)

// Check logs msg in red and panics with err when err is not nil. The panic
// value is err itself so that recovering callers can inspect it.
func Check(err error, msg string) {
	if err != nil {
		fmt.Print(chalk.Red)
		log.Print(msg, ": ", err, chalk.Reset)
		panic(err)
	}
}
