package main

import "github.com/soccerstatsqc/league-dashboard/internal/cli"

func main() {
	cli.Execute()
}
