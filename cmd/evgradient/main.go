// evgradient - gradient fraction heat-map and classification tool
package main

import (
	"fmt"
	"os"

	"github.com/yamamoto-tdc/EV-saliva/cmd/evgradient/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
