package main

import "github.com/nguyentranbao-ct/dream-api/cmd"

func main() {
	cmd.Execute()
}
