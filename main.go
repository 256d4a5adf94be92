package main

import "github.com/healthifylite/healthify/cmd/healthify"

func main() {
	healthify.Execute()
}
