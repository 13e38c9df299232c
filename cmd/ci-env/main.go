package main

import "github.com/davarch/ci-env/cmd/ci-env/cli"

func main() {
	cli.Execute()
}
