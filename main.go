package main

import "github.com/jsphweid/pentascale/cmd"

func main() {
	cmd.Execute()
}
