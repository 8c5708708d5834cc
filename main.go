package main

import "task-match-system.com/task-match-system/cmd"

func main() {
	cmd.Execute()
}
