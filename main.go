package main

import "asset-picker/cmd"

func main() {
	cmd.Execute()
}
