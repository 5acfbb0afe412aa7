package main

import "github.com/employee-management/cmd/emsctl/cmd"

func main() {
	cmd.Execute()
}
