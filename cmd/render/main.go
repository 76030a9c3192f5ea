// Package main is a command-line renderer for WNS payloads.
//
// It reads one render request as JSON (the same document POST /v1/payloads
// accepts) and writes the push body to stdout:
//
//	echo '{"kind":"badge","glyph":"alert"}' | render
//	render -in tile.json -headers
//	render -version
//
// With -headers the delivery headers are printed first, one "Name: value"
// per line, followed by a blank line. Exit status is 0 on success, 2 when
// the request is rejected (validation or invalid state) and 1 on any other
// failure.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"wnspush/internal/config"
	"wnspush/internal/core"
	"wnspush/internal/notifications/wns"
	"wnspush/internal/render"
	"wnspush/internal/types"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitRejected = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inFlag := fs.String("in", "-", "Path to the JSON render request (- for stdin)")
	headersFlag := fs.Bool("headers", false, "Print the WNS delivery headers before the payload")
	versionFlag := fs.Bool("version", false, "Print build information and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: render [-in FILE] [-headers]\n\n")
		fmt.Fprintf(stderr, "Renders a WNS tile, toast, badge or raw payload from a JSON request.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitRejected
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "render %s\n", config.NewBuildInfo())
		return exitOK
	}

	in := stdin
	if *inFlag != "-" {
		f, err := os.Open(*inFlag)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitFailure
		}
		defer f.Close()
		in = f
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	req, err := decodeRequest(in)
	if err != nil {
		return report(stderr, err)
	}

	svc := render.NewService(core.NewValidator(logger), types.NewSlogAdapter(logger), nil)
	result, err := svc.Render(context.Background(), req)
	if err != nil {
		return report(stderr, err)
	}

	if *headersFlag {
		for _, name := range wns.DeliveryHeaderNames {
			if v, ok := result.Headers[name]; ok {
				fmt.Fprintf(stdout, "%s: %s\n", name, v)
			}
		}
		fmt.Fprintln(stdout)
	}
	if _, err := io.WriteString(stdout, result.Payload); err != nil {
		fmt.Fprintf(stderr, "error: writing payload: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func decodeRequest(r io.Reader) (*render.Request, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var req render.Request
	if err := dec.Decode(&req); err != nil {
		return nil, types.NewAppError(types.ErrCodeValidationInvalidJSON, "invalid JSON request: "+err.Error(), err)
	}
	return &req, nil
}

// report prints err and maps it to an exit status.
func report(stderr io.Writer, err error) int {
	var appErr *types.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintf(stderr, "error: %s\n", appErr.Error())
		if fields, ok := appErr.Details["fields"].(map[string]string); ok {
			for name, problem := range fields {
				fmt.Fprintf(stderr, "  %s %s\n", name, problem)
			}
		}
		if !appErr.Code.Retryable() {
			return exitRejected
		}
		return exitFailure
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return exitFailure
}
