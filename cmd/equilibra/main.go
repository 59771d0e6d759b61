package main

import (
	"github.com/pastrylab/equilibra/pkg/cli"
)

func main() {
	cli.Execute()
}
