package main

import "resume-builder/internal/cli"

func main() {
	cli.Execute()
}
