package main

import "secure-app-server/cmd"

func main() {
	cmd.Execute()
}
