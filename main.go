package main

import "timetable-sync/cmd"

func main() {
	cmd.Execute()
}
