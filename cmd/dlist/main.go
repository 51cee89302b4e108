package main

import "github.com/mgnsk/dlist/internal/cli"

func main() {
	cli.Execute()
}
