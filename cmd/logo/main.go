// Command logo is the Logo interpreter's CLI driver. It holds no
// logic of its own beyond dispatching to cmd/logo/cmd, the way
// `cmd/dwscript`'s binary wraps `cmd/dwscript/cmd.Execute`.
package main

import (
	"fmt"
	"os"

	"github.com/cwaldbieser/logopy/cmd/logo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
