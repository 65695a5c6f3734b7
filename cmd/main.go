package main

import "tomato/internal/cli"

func main() {
	cli.Execute()
}
