package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gfxkit/glspv"
	"github.com/gfxkit/glspv/shaderc"
	"github.com/gfxkit/glspv/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┬  ┌─┐┌─┐┬  ┬
│ ┬│  └─┐├─┘└┐┌┘
└─┘┴─┘└─┘┴   └┘

GLSL to SPIR-V compile driver.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	kind     = flag.String("t", "", "Shader stage: vertex|fragment|compute|geometry|tess_control|tess_evaluation (default is inferred from the source)")
	optimize = flag.Bool("O", false, "Enable the performance optimization preset")
	name     = flag.String("n", "shader", "Logical input name used in diagnostics")
	source   = flag.String("f", pipeName, "Source file path")
	output   = flag.String("o", pipeName, "Destination file path")
	verbose  = flag.Bool("verbose", false, "Report the compilation time on the diagnostic stream")
	version  = flag.Bool("version", false, "Print the version and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	// The documented exit codes are 0 and 1 only, so flag misuse must not
	// exit with the flag package's default code 2.
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(1)
	}

	if *version {
		fmt.Fprintf(os.Stderr, "glspv version %s\n", Version)
		return
	}

	proc := &glspv.Processor{
		Kind:      shaderc.KindFromString(*kind),
		InputName: *name,
		Optimize:  *optimize,
	}

	// Check if the source is a pipe name or a regular file.
	var src io.Reader
	if *source == pipeName {
		src = os.Stdin
	} else {
		in, err := os.Open(*source)
		if err != nil {
			fatal("Error: Could not open file: %s", *source)
		}
		defer in.Close()
		src = in
	}

	// Check if the destination is a pipe name or a regular file. Writes to
	// os.Stdout are byte-exact on every platform, no line-ending translation
	// is applied on the binary emission path.
	var dst io.Writer
	if *output == pipeName {
		dst = os.Stdout
	} else {
		out, err := os.Create(*output)
		if err != nil {
			fatal("Error: Could not create file: %s", *output)
		}
		defer out.Close()
		dst = out
	}

	now := time.Now()
	if err := proc.Process(src, dst); err != nil {
		var cerr *shaderc.CompileError
		switch {
		case errors.Is(err, glspv.ErrNoSource):
			fatal("Error: No shader source provided")
		case errors.As(err, &cerr):
			fatal("Compilation error (status code: %d)\nError message: \"%s\"", int(cerr.Status), cerr.Message)
		default:
			fatal("Error: %v", err)
		}
	}

	if *verbose {
		fmt.Fprintln(os.Stderr, decorate(
			fmt.Sprintf("Compiled %s in %s", *name, utils.FormatTime(time.Since(now))),
			utils.SuccessMessage,
		))
	}
}

// fatal reports a diagnostic on the error stream and exits with a failure
// code. os.Stderr is unbuffered, the message is flushed before the exit.
func fatal(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, decorate(fmt.Sprintf(format, args...), utils.ErrorMessage))
	os.Exit(1)
}

// decorate colorizes the message only when the error stream is attached to a
// terminal, so that piped diagnostics stay byte-exact.
func decorate(s string, msgType utils.MessageType) string {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return utils.DecorateText(s, msgType)
	}
	return s
}
