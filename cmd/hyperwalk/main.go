// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

// Package hyperwalk provides a generic command-line hypermedia
// browser.  It knows nothing about any particular API: every URL it
// fetches beyond the first is discovered from a document it was
// given.
package main

import (
	"fmt"
	"os"

	"github.com/isra-skyler/laravel-austin/traverse"
	"github.com/urfave/cli"
)

var browser traverse.Browser

var relationsCommand = cli.Command{
	Name:      "relations",
	Usage:     "list the relations a document advertises",
	ArgsUsage: "URL",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.NewExitError("expected exactly one URL", 1)
		}
		doc, err := browser.Get(c.Args().First())
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		for _, name := range doc.Relations() {
			fmt.Println(name)
		}
		return nil
	},
}

var followCommand = cli.Command{
	Name:      "follow",
	Usage:     "follow a chain of relations and print the final document",
	ArgsUsage: "URL RELATION [RELATION...]",
	Action: func(c *cli.Context) error {
		if c.NArg() < 2 {
			return cli.NewExitError("expected a URL and at least one relation", 1)
		}
		doc, err := browser.Follow(c.Args().First(), c.Args().Tail()...)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		os.Stdout.Write(doc.Body())
		fmt.Println()
		return nil
	},
}

func main() {
	app := cli.NewApp()
	app.Name = "hyperwalk"
	app.Usage = "walk a hypermedia API by its advertised links"
	app.Commands = []cli.Command{
		relationsCommand,
		followCommand,
	}
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
