package main

import (
	"fmt"
	"os"

	"github.com/voxctl/voxctl/panelservice"
)

func main() {
	if err := panelservice.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
