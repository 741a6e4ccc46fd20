// file: main.go
// version: 2.0.0
// guid: 32d482e6-3b25-4ba5-b51d-fa5b5b96e40f

package main

import (
	"fmt"
	"os"

	"github.com/jdfalk/rankcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
