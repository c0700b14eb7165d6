package main

import "github.com/exactas-tools/cal2org/internal/cli"

func main() {
	cli.Execute()
}
