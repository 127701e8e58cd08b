package main

import "q3-demo-checker/cmd"

func main() {
	cmd.Execute()
}
