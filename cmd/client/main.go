package main

import "carcost/cmd/client/cmd"

func main() {
	cmd.Execute()
}
