package cmd

import (
	"github.com/urfave/cli"

	"github.com/yangruisxy/curvetrace/log"
)

var logger = log.New("curvetrace")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
