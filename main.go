package main

import "github.com/clovera/admin-api/cmd"

func main() {
	cmd.Execute()
}
