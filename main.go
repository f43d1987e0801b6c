// Package main is the entry point for the oklint application.
package main

import (
	"github.com/oklint-cli/oklint/cmd"
	"github.com/oklint-cli/oklint/config"
	"github.com/oklint-cli/oklint/internal/cache"
	"github.com/oklint-cli/oklint/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
