package main

import "webresearch/cmd"

func main() {
	cmd.Execute()
}
