package main

import "github.com/liamg/ipsniff/cmd"

func main() {
	cmd.Execute()
}
