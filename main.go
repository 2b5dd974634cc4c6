package main

import "github.com/psb-2018-2019-apcsp/bhs-calendar/cmd"

func main() {
	cmd.Execute()
}
