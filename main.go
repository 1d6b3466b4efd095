package main

import "recon-service/cmd"

func main() {
	cmd.Execute()
}
