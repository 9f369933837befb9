package main

import "bennypowers.dev/swatchnorm/internal/cmd"

func main() {
	cmd.Execute()
}
