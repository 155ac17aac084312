// seehuhn.de/go/colorspace - convert colors between color models
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/colorspace"
	"seehuhn.de/go/colorspace/tools/internal/buildinfo"
)

var (
	spaceArg  = flag.String("space", "sRGB", "RGB working space `name`")
	configArg = flag.String("config", "", "read additional working spaces from the YAML `file`")
	rotateArg = flag.Float64("rotate", 0, "rotate the hue by `h` turns")
	listArg   = flag.Bool("list", false, "list the available working spaces and exit")
	verbose   = flag.Bool("v", false, "log diagnostic messages to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "colorconv \u2014 show a color in different color models\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("colorconv"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  colorconv [options] <color>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  color   a web color of the form #rrggbb\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  colorconv '#ff8000'\n")
		fmt.Fprintf(os.Stderr, "  colorconv -space 'Adobe RGB (1998)' -rotate 0.5 '#336699'\n")
	}
	flag.Parse()

	if flag.NArg() < 1 && !*listArg {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		colorspace.SetLogger(slog.New(h))
	}

	spaces, err := loadSpaces(*configArg)
	if err != nil {
		return err
	}

	if *listArg {
		for _, name := range spaces.Names() {
			ws, _ := spaces.Lookup(name)
			fmt.Println(ws)
		}
		return nil
	}

	ws, ok := spaces.Lookup(*spaceArg)
	if !ok {
		return fmt.Errorf("unknown working space %q (use -list to see all)", *spaceArg)
	}

	p := &printer{
		ws:     ws,
		rotate: *rotateArg,
		swatch: term.IsTerminal(int(os.Stdout.Fd())),
	}
	for i, arg := range flag.Args() {
		c, err := colorspace.ParseWebColorString(arg)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		if err := p.print(os.Stdout, c); err != nil {
			return err
		}
	}
	return nil
}

func loadSpaces(fname string) (*colorspace.RGBWorkingSpaces, error) {
	if strings.TrimSpace(fname) == "" {
		return colorspace.NewRGBWorkingSpaces(), nil
	}
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	spaces, err := colorspace.LoadRGBWorkingSpaces(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return spaces, nil
}
