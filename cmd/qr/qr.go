// Qr encodes a string as a version 3-L QR code and writes it as an SVG
// image or draws it on the terminal.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/unixdj/qrsvg"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

// config holds the command line settings.  Defaults for the exported
// fields come from the environment.
type config struct {
	Output string `env:"QR_OUTPUT"`                // filename
	Scale  int    `env:"QR_SCALE" envDefault:"8"`  // pixels per module
	Border int    `env:"QR_MARGIN" envDefault:"8"` // quiet zone pixels

	format string // output format
	latin1 bool   // Latin-1 byte mode
}

var formats = []string{"svg", "utf8", "utf8i"}

var encoders = map[string]func(*qr.Code, io.Writer) error{
	"svg":   (*qr.Code).EncodeSVG,
	"utf8":  func(c *qr.Code, w io.Writer) error { return c.EncodeText(w, false) },
	"utf8i": func(c *qr.Code, w io.Writer) error { return c.EncodeText(w, true) },
}

func printUsage(w io.Writer, s *getopt.Set) {
	fmt.Fprint(w, "QR code generator\nUsage: ", s.Program(), " ",
		s.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  The code is 29×29 modules with low error
correction and holds up to 53 bytes.

`)
	s.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

// parseFlags parses the command line args, args[0] being the program
// name, over defaults taken from environ.  tty reports whether
// standard output is a terminal.  It returns the settings and the
// string to encode, if any was given.
func parseFlags(args, environ []string, tty bool) (*config, []string, error) {
	g, err := env.ParseAsWithOptions[config](env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, nil, err
	}
	s := getopt.New()
	s.Flag(opt(func() {
		printUsage(os.Stdout, s)
		os.Exit(0)
	}), 'h', "show this help").SetFlag()
	s.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	fno := s.Flag(&g.Output, 'o', `output file, or "-" for standard `+
		`output [$QR_OUTPUT]`, "file")
	s.Flag(&g.Scale, 's', "image pixels per module [$QR_SCALE]", "scale")
	s.Flag(&g.Border, 'm', "quiet zone pixels [$QR_MARGIN]", "margin")
	s.Flag(&g.latin1, '1', "convert input to Latin-1")
	ff := s.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+`; "utf8i" has colours inverted; `+
		`if no output file is given and standard output is a TTY, `+
		`default is utf8, otherwise svg`, "type")
	if err := s.Getopt(args, nil); err != nil {
		return nil, nil, err
	}
	g.format = *ff
	if g.format == "" {
		if !fno.Seen() && g.Output == "" && tty {
			g.format = "utf8"
		} else {
			g.format = "svg"
		}
	}
	if g.Output == "-" {
		g.Output = ""
	}
	return &g, s.Args(), nil
}

// readText returns args joined by spaces, or stdin without the final
// newline if there are no args.
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) != 0 {
		return strings.Join(args, " "), nil
	}
	var b strings.Builder
	if _, err := io.Copy(&b, stdin); err != nil {
		return "", err
	}
	s, _ := strings.CutSuffix(
		strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	return s, nil
}

func encode(g *config, s string) (*qr.Code, error) {
	enc := qr.Encode
	if g.latin1 {
		enc = qr.EncodeLatin1
	}
	c, err := enc(s)
	if err != nil {
		return nil, err
	}
	c.Scale = g.Scale
	c.Border = g.Border
	return c, nil
}

// write writes c to the output file, or to stdout if there is none.
func write(g *config, c *qr.Code, stdout io.Writer) error {
	if g.Output == "" {
		return encoders[g.format](c, stdout)
	}
	if g.format == "svg" {
		return c.WriteFile(g.Output)
	}
	w, err := os.OpenFile(g.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
		0666)
	if err != nil {
		return err
	}
	if err := encoders[g.format](c, w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func run(g *config, args []string, stdin io.Reader, stdout io.Writer) error {
	s, err := readText(args, stdin)
	if err != nil {
		return err
	}
	c, err := encode(g, s)
	if err != nil {
		return err
	}
	return write(g, c, stdout)
}

func main() {
	log.SetFlags(0)
	g, args, err := parseFlags(os.Args, os.Environ(),
		isatty.IsTerminal(os.Stdout.Fd()))
	if err != nil {
		log.Fatalln(err)
	}
	if err := run(g, args, os.Stdin, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}
