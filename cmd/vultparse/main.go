// Command vultparse parses Vult source and reports diagnostics or a
// dump of the parsed statements.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/vult-lang/vultparse/internal/pipeline"
)

var (
	dump   bool
	logger hclog.Logger
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "vultparse",
		Level:  hclog.Warn,
		Output: os.Stderr,
	})

	root := &cobra.Command{
		Use:   "vultparse [file]",
		Short: "Parse Vult source and report diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	root.Flags().BoolVar(&dump, "dump", false, "print a rendering of the parsed statements instead of nothing on success")
	root.Flags().String("log-level", "warn", "log level (trace|debug|info|warn|error)")
	root.PreRun = func(cmd *cobra.Command, args []string) {
		if lvl, err := cmd.Flags().GetString("log-level"); err == nil {
			logger.SetLevel(hclog.LevelFromString(lvl))
		}
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	source, file, err := readInput(args)
	if err != nil {
		return err
	}

	stages := []pipeline.Processor{&pipeline.ParseStage{Log: logger}}
	if dump {
		stages = append(stages, &pipeline.DumpStage{})
	}

	ctx := pipeline.New(stages...).Run(pipeline.NewContext(file, source))

	if len(ctx.Errors) > 0 {
		red := color.New(color.FgRed, color.Bold)
		red.Fprintln(os.Stderr, "parsing failed:")
		for _, e := range ctx.Errors {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		os.Exit(1)
	}

	if dump {
		fmt.Println(ctx.Rendered)
	}
	return nil
}

func readInput(args []string) (source, file string, err error) {
	if len(args) == 0 {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", "", fmt.Errorf("usage: vultparse <file> or pipe from stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "live.vult", nil
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), path, nil
}
