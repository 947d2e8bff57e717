package main

import "gitlab.com/nunet/vkinfo/cmd"

func main() {
	cmd.Execute()
}
