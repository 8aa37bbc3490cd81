package main

import (
	"fmt"
	"os"

	"github.com/voxctl/voxctl/controlservice"
)

func main() {
	if err := controlservice.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
