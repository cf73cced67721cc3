package main

import "github.com/KaramelBytes/pitwall-cli/cmd"

func main() {
	cmd.Execute()
}
