package main

import "github.com/inference-gateway/keybinds/cmd"

func main() {
	cmd.Execute()
}
