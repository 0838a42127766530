package main

import "github.com/inovacc/clipr/cmd"

func main() {
	cmd.Execute()
}
