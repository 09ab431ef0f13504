package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/astdot/ast"
	"github.com/pontaoski/astdot/graph"
	"github.com/pontaoski/astdot/parser"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/astdot", "main")

func setupLogging(c *cli.Context) error {
	debug := c.Bool("debug")
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, debug))
	if debug {
		capnslog.SetGlobalLogLevel(capnslog.DEBUG)
	} else {
		capnslog.SetGlobalLogLevel(capnslog.WARNING)
	}
	return nil
}

// parseSource parses the file named by the first argument, or stdin when
// there is none or it is "-".
func parseSource(c *cli.Context) *ast.Function {
	name := c.Args().First()

	var in io.Reader = os.Stdin
	if name == "" || name == "-" {
		name = "stdin"
	} else {
		handle, err := os.Open(name)
		if err != nil {
			tracerr.PrintSourceColor(tracerr.Wrap(err))
			os.Exit(1)
		}
		defer handle.Close()
		in = handle
	}

	root, err := parser.Parse(bufio.NewReader(in), name)
	if err != nil {
		tracerr.PrintSourceColor(err)
		os.Exit(1)
	}

	return root
}

// loadConfig reads astdot.yaml when there is one and applies any flags set
// on the command line over it.
func loadConfig(c *cli.Context) graph.Config {
	var cfg graph.Config

	path := c.String("config")
	if _, err := os.Stat(path); err == nil {
		cfg, err = graph.LoadConfig(path)
		if err != nil {
			tracerr.PrintSourceColor(err)
			os.Exit(1)
		}
		plog.Debugf("loaded %s", path)
	} else if c.IsSet("config") {
		fmt.Printf("error reading %s: %s\n", path, err)
		os.Exit(1)
	}

	if c.IsSet("continue-on-error") {
		cfg.ContinueOnError = c.Bool("continue-on-error")
	}
	if c.IsSet("label-true") {
		cfg.LabelTrueLiterals = c.Bool("label-true")
	}
	if c.IsSet("wrap") {
		cfg.Wrap = c.Bool("wrap")
	}

	return cfg
}

var exportFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  "continue-on-error",
		Usage: "write a comment line for a malformed node and keep going",
	},
	&cli.BoolFlag{
		Name:  "label-true",
		Usage: "label true literals",
	},
	&cli.BoolFlag{
		Name:  "wrap",
		Usage: "wrap the output in a digraph block",
	},
}

func main() {
	app := &cli.App{
		Name:   "astdot",
		Usage:  "draw the syntax tree of a program as a graph",
		Before: setupLogging,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log what the parser and exporter are doing",
			},
		},
		ExitErrHandler: func(context *cli.Context, err error) {
			if err != nil {
				plog.Fatalf("error with astdot: %v", err)
			}
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a default " + graph.ConfigFile,
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing file",
					},
				}, exportFlags...),
				Action: func(c *cli.Context) error {
					if _, err := os.Stat(graph.ConfigFile); err == nil && !c.Bool("force") {
						fmt.Printf("%s already exists\n", graph.ConfigFile)
						os.Exit(1)
					}

					cfg := graph.Config{
						ContinueOnError:   c.Bool("continue-on-error"),
						LabelTrueLiterals: c.Bool("label-true"),
						Wrap:              c.Bool("wrap"),
					}
					if err := cfg.Save(graph.ConfigFile); err != nil {
						fmt.Printf("error creating %s: %s\n", graph.ConfigFile, err)
						os.Exit(1)
					}

					return nil
				},
			},
			{
				Name:      "graph",
				Usage:     "print the syntax tree of a file as a graph",
				ArgsUsage: "[file]",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "output",
						Usage: "write to this file instead of stdout",
					},
					&cli.StringFlag{
						Name:  "config",
						Value: graph.ConfigFile,
					},
				}, exportFlags...),
				Action: func(c *cli.Context) error {
					cfg := loadConfig(c)
					root := parseSource(c)

					var out io.Writer = os.Stdout
					if path := c.String("output"); path != "" {
						fi, err := os.Create(path)
						if err != nil {
							fmt.Printf("error creating %s: %s\n", path, err)
							os.Exit(1)
						}
						defer fi.Close()
						out = fi
					}

					e := graph.NewExporter(cfg)
					err := e.Export(out, root)

					released := ast.Release(root)
					stats := e.Stats()
					plog.Debugf("released %d of %d nodes", released, stats.Nodes)

					if errs, ok := err.(graph.Errors); ok {
						for _, err := range errs {
							plog.Errorf("%s", err)
						}
						os.Exit(1)
					} else if err != nil {
						tracerr.PrintSourceColor(err)
						os.Exit(1)
					}

					return nil
				},
			},
			{
				Name:      "dump",
				Usage:     "dump the syntax tree of a file",
				ArgsUsage: "[file]",
				Action: func(c *cli.Context) error {
					root := parseSource(c)
					repr.Println(root)
					ast.Release(root)
					return nil
				},
			},
		},
	}
	app.Run(os.Args)
}
