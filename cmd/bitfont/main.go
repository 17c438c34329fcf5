package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/bodgit/bitfont"
	"github.com/bodgit/bitfont/preview"
	"github.com/bodgit/bitfont/sheet"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

const (
	defaultScale = 4
	envFile      = ".env"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}
	return logger
}

// transcode reads the dump and hands the font map to fn. Invalid hex
// digits don't stop fn from running but are still reported as a failure
// afterwards.
func transcode(c *cli.Context, fn func(*bitfont.FontMap) error) error {
	layout, err := bitfont.LayoutByName(c.String("layout"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	fm, err := bitfont.New(layout.Catalog, layout, newLogger(c)).TranscodeFile(c.String("input"))
	var invalid *bitfont.InvalidInputError
	if err != nil && !errors.As(err, &invalid) {
		return cli.Exit(err, 1)
	}

	if err := fn(fm); err != nil {
		return cli.Exit(err, 1)
	}

	if invalid != nil {
		return cli.Exit(invalid, 1)
	}

	return nil
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			return width
		}
	}
	return preview.DefaultWidth
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "bitfont"
	app.Usage = "Convert the Taipan font dump for BitFontMaker2"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			EnvVars: []string{"BITFONT_INPUT"},
			Value:   bitfont.DefaultInput,
			Usage:   "path to font dump",
		},
		&cli.StringFlag{
			Name:    "layout",
			Aliases: []string{"l"},
			EnvVars: []string{"BITFONT_LAYOUT"},
			Value:   bitfont.Compact.Name,
			Usage:   fmt.Sprintf("glyph layout, one of %s", strings.Join(bitfont.LayoutNames(), ", ")),
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		return transcode(c, func(fm *bitfont.FontMap) error {
			_, err := fm.WriteTo(c.App.Writer)
			return err
		})
	}

	app.Commands = []*cli.Command{
		{
			Name:        "preview",
			Usage:       "Draw the glyphs as text",
			Description: "Draws each glyph with one character per pixel, leftmost pixel from bit 0",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "flip",
					Usage: "draw the leftmost pixel from bit 7",
				},
				&cli.IntFlag{
					Name:  "width",
					Usage: "output width in columns, defaults to the terminal width",
				},
			},
			Action: func(c *cli.Context) error {
				width := c.Int("width")
				if width == 0 {
					width = terminalWidth(c.App.Writer)
				}

				return transcode(c, func(fm *bitfont.FontMap) error {
					return preview.Write(c.App.Writer, fm, width, c.Bool("flip"))
				})
			},
		},
		{
			Name:      "sheet",
			Usage:     "Render the glyphs as a PNG contact sheet",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "scale",
					Value: defaultScale,
					Usage: "pixel scale factor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				return transcode(c, func(fm *bitfont.FontMap) error {
					b := new(bytes.Buffer)
					if err := sheet.Encode(b, fm, c.Int("scale")); err != nil {
						return err
					}

					return os.WriteFile(c.Args().First(), b.Bytes(), 0o644)
				})
			},
		},
	}

	return app
}

// loadEnv sets any variables in the working directory's .env file that
// aren't already set. A missing file is ignored.
func loadEnv() error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// run loads the environment before app parses its flags so that .env
// values are seen by the flags' EnvVars.
func run(app *cli.App, args []string) error {
	if err := loadEnv(); err != nil {
		return err
	}
	return app.Run(args)
}

func main() {
	if err := run(newApp(), os.Args); err != nil {
		log.Fatal(err)
	}
}
