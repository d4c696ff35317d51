package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	pb "gopkg.in/cheggaaa/pb.v1"
	"unknwon.dev/clog/v2"

	"github.com/canhlinh/batchdl"
)

// valueFlags take the next argument as their value.
var valueFlags = map[string]bool{
	"output":     true,
	"o":          true,
	"workers":    true,
	"n":          true,
	"timeout":    true,
	"user-agent": true,
}

// setupLog registers the clog console and returns its stop function.
var setupLog = func(verbose bool) (func(), error) {
	level := clog.LevelInfo
	if verbose {
		level = clog.LevelTrace
	}
	if err := clog.NewConsole(0, clog.ConsoleConfig{Level: level}); err != nil {
		return nil, errors.Wrap(err, "init logger")
	}
	return clog.Stop, nil
}

func main() {
	if err := newApp().Run(reorderArgs(os.Args)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "batchdl",
		Usage:     "download every URL of a list, several at a time",
		ArgsUsage: "[list-file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "`directory` to save files into, created if missing",
				Value:   ".",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"n"},
				Usage:   "number of parallel `workers`",
				Value:   batchdl.DefaultWorkers,
				EnvVars: []string{"BATCHDL_WORKERS"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "per request timeout, 0 waits forever",
				EnvVars: []string{"BATCHDL_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:  "user-agent",
				Usage: "User-Agent header sent with every request",
			},
			&cli.BoolFlag{
				Name:  "bar",
				Usage: "draw one bar for the whole list instead of per file progress",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "hide per file progress",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "verbose output trace log",
			},
		},
		Action: download,
	}
}

// reorderArgs moves flags in front of the list file, so that
// "batchdl list.txt -o out" means the same as "batchdl -o out list.txt".
// Everything after "--" is kept positional.
func reorderArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	flags := []string{}
	positional := []string{}
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if arg == "--" {
			positional = append(positional, rest[i:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			positional = append(positional, arg)
			continue
		}

		flags = append(flags, arg)
		name := strings.TrimLeft(arg, "-")
		if !strings.Contains(name, "=") && valueFlags[name] && i+1 < len(rest) {
			i++
			flags = append(flags, rest[i])
		}
	}

	reordered := append([]string{args[0]}, flags...)
	return append(reordered, positional...)
}

func download(c *cli.Context) error {
	if c.NArg() > 1 {
		return errors.Errorf("expected at most one list file, got %d arguments", c.NArg())
	}

	stopLog, err := setupLog(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer stopLog()

	listFile := batchdl.DefaultListFile
	if c.Args().Present() {
		listFile = c.Args().First()
	}

	dir := c.String("output")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create folder [%s]", dir)
	}

	urls, err := batchdl.LoadURLs(listFile, batchdl.MaxQueueItems)
	if err != nil {
		return err
	}
	clog.Trace("loaded %d urls from %s", len(urls), listFile)

	useColor := !c.Bool("no-color") && isatty.IsTerminal(os.Stdout.Fd())
	console := batchdl.NewConsole(colorable.NewColorableStdout(), colorable.NewColorableStderr()).
		SetColor(useColor)

	opts := batchdl.DefaultOptions()
	opts.Dir = dir
	opts.Workers = c.Int("workers")
	opts.Console = console
	opts.NoProgress = c.Bool("no-progress") || c.Bool("bar")
	opts.Transport = batchdl.NewTransport(batchdl.TransportOptions{
		Timeout:   c.Duration("timeout"),
		UserAgent: c.String("user-agent"),
	})

	var bar *pb.ProgressBar
	if c.Bool("bar") {
		bar = pb.New(len(urls)).Prefix("Files ")
		bar.Output = console
		bar.ShowSpeed = false
		bar.Start()
		opts.OnOutcome = func(batchdl.Outcome) {
			bar.Increment()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := batchdl.NewManager(opts).Run(ctx, urls)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if report.OK() {
		clog.Info("%s", report)
	} else {
		clog.Warn("%s", report)
	}
	return nil
}
