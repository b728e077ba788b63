package main

import "github.com/LaurentChen88/outil-sncf/internal/cli"

func main() {
	cli.Execute()
}
