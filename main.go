package main

import "media-library/cmd"

func main() {
	cmd.Execute()
}
