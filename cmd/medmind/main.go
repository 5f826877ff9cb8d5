package main

import "github.com/yannix2/medmind/internal/cli"

func main() {
	cli.Execute()
}
