package main

import "github.com/Pravin-surawase/structural-engineering-lib-sub000/cmd"

func main() {
	cmd.Execute()
}
