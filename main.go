package main

import "github.com/stonewall-sec/auditscope/cmd"

func main() {
	cmd.Execute()
}
