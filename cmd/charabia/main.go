package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/paraglidehq/charabia"
	"github.com/paraglidehq/charabia/tower"
)

// Options are the command line options for the charabia prompt loop.
type Options struct {
	Separators string `short:"s" long:"separators" required:"true" description:"Separator characters (1-42 unique alphanumerics)"`
	Fixed      bool   `short:"f" long:"fixed" description:"Disable randomized letter and separator choice"`
	Rows       int    `short:"r" long:"rows" description:"Tower row width for encoded output, 0 disables folding"`
	Once       bool   `long:"once" description:"Exit after a single operation"`
	Verbose    bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PrintErrors)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := charabia.Configure(opts.Separators); err != nil {
		log.WithError(err).Fatal("invalid separator configuration")
	}
	log.WithField("separators", charabia.Separators()).Debug("codec configured")

	if err := run(opts, bufio.NewScanner(os.Stdin)); err != nil {
		log.WithError(err).Fatal("input error")
	}
}

// run drives the prompt loop. Codec errors are printed and the loop
// continues; only input stream failures end it.
func run(opts Options, in *bufio.Scanner) error {
	for {
		op, ok := promptOperation(in)
		if !ok {
			return errors.WithStack(in.Err())
		}

		fmt.Print("text: ")
		if !in.Scan() {
			return errors.WithStack(in.Err())
		}
		text := in.Text()

		result, err := perform(op, text, opts)
		if err != nil {
			fmt.Println(err)
		} else {
			fmt.Println(result)
		}

		if opts.Once {
			return nil
		}
	}
}

// promptOperation re-prompts until the user answers encode or decode,
// case-insensitively. Returns false when the input stream ends.
func promptOperation(in *bufio.Scanner) (string, bool) {
	for {
		fmt.Print("encode or decode? ")
		if !in.Scan() {
			return "", false
		}
		op := strings.ToLower(strings.TrimSpace(in.Text()))
		if op == "encode" || op == "decode" {
			return op, true
		}
		fmt.Println("please answer 'encode' or 'decode'")
	}
}

func perform(op, text string, opts Options) (string, error) {
	if op == "decode" {
		return charabia.Decode(text)
	}
	var encoded string
	var err error
	if opts.Fixed {
		encoded, err = charabia.EncodeFixed(text)
	} else {
		encoded, err = charabia.Encode(text)
	}
	if err != nil {
		return "", err
	}
	return tower.Fold(encoded, opts.Rows), nil
}
