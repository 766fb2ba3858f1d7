package main

import (
	"sor-reader/cli"
)

func main() {
	cli.Start()
}
