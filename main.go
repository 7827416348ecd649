package main

import (
	"fmt"
	"os"

	"github.com/AnyUserName/exticons/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "exticons: %v\n", err)
		os.Exit(1)
	}
}
