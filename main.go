package main

import (
	"envi-binreader/cli"
)

func main() {
	cli.Start()
}
