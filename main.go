package main

import "github.com/alexiusacademia/goifd/cmd"

func main() {
	cmd.Execute()
}
