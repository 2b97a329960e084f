package cliapi

import (
	"io"

	"github.com/urfave/cli/v2"
)

func NewApp(h *Handler, out io.Writer) *cli.App {
	return &cli.App{
		Name:     "food-delivery",
		Usage:    "browse restaurants and order food",
		Commands: h.Commands(),
		Writer:   out,
	}
}
