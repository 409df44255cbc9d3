package main

import (
	"github.com/yeisme/jprof/cmd"
)

func main() {
	cmd.Execute()
}
