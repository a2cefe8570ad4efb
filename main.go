package main

import "github.com/ionut-t/wordy/cmd"

func main() {
	cmd.Execute()
}
