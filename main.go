package main

import (
	"github.com/hdlkit/regmap/cmd"
)

func main() {
	cmd.Execute()
}
