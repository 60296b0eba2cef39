// swiftmsg is the command-line frontend: it composes a payment from flags,
// renders it as MT103 or pain.001 and reports the validation verdict.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
