package main

import "github.com/zjrosen/soroban/cmd"

func main() {
	cmd.Execute()
}
