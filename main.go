package main

import "jobtrack/cmd"

func main() {
	cmd.Execute()
}
