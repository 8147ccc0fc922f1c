package main

import "gl-dispatch/cmd/glinfo/cmd"

func main() {
	cmd.Execute()
}
