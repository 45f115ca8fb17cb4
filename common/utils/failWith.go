package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
)

var exit = os.Exit

func FailWith(err error) {
	PrintError(os.Stdout, err)
	exit(1)
}

func WarnWith(err error) {
	fmt.Println("")
	fmt.Println(chalk.Yellow.Color("⚠️  Warning"))
	fmt.Println("")
	fmt.Println(err.Error())
}

// PrintError writes the error message followed by its root cause when the two differ.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, chalk.Red.Color("❌  An error occurred."))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, err.Error())

	if cause := errors.Cause(err); cause != err {
		fmt.Fprintln(w, "  cause: "+cause.Error())
	}
}
