package main

import (
	"context"
	"os"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if err := ExecuteWithFang(context.Background()); err != nil {
		os.Exit(1)
	}
}
