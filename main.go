package main

import "distill/cli"

func main() {
	cli.Execute()
}
