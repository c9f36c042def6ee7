package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
)

var (
	exit                = os.Exit
	errOutput io.Writer = os.Stderr
)

// FailWith reports err on stderr and exits with status 1.
func FailWith(err error) {
	printChain(errOutput, chalk.Red, "❌  An error occurred.", err)
	exit(1)
}

// WarnWith reports err on stderr and returns.
func WarnWith(err error) {
	printChain(errOutput, chalk.Yellow, "⚠️  Warning", err)
}

func printChain(w io.Writer, color chalk.Color, title string, err error) {
	command := strings.Join(os.Args, " ")

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, color.Color(title))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  command: "+command)
	fmt.Fprintln(w, "  error:   "+err.Error())

	if cause := errors.Cause(err); cause != err {
		fmt.Fprintln(w, "  cause:   "+cause.Error())
	}

	fmt.Fprintln(w, "")
}
