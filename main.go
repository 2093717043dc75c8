package main

import "github.com/katalvlaran/trafficgraph/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
