package main

import (
	"github.com/anisan-cli/anisan-sources/cmd"
	"github.com/anisan-cli/anisan-sources/config"
	"github.com/anisan-cli/anisan-sources/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
