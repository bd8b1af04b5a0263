package main

import "github.com/vietddude/suiscope/internal/cli"

func main() {
	cli.Execute()
}
