// Package app is helper for simple cli apps.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	parse "github.com/LibertyOS-Development/parse-binary"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitMalformed = 1 // input violates read preconditions
	ExitError     = 2
)

// Run calls run with development logger named after the tool and exits
// with code from Exec.
func Run(name string, run func(ctx context.Context, lg *zap.Logger) error) {
	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	os.Exit(Exec(context.Background(), lg.Named(name), os.Stderr, run))
}

// Exec calls run and returns exit code, reporting error to w.
//
// Errors wrapping *parse.Error mean malformed input and map to
// ExitMalformed.
func Exec(ctx context.Context, lg *zap.Logger, w io.Writer, run func(ctx context.Context, lg *zap.Logger) error) int {
	defer func() { _ = lg.Sync() }()

	err := run(ctx, lg)
	if err == nil {
		return ExitOK
	}
	_, _ = fmt.Fprintf(w, "Error: %+v\n", err)

	var e *parse.Error
	if errors.As(err, &e) {
		lg.Error("Malformed input",
			zap.Stringer("kind", e.Kind),
			zap.Int("len", e.Len),
		)
		return ExitMalformed
	}
	return ExitError
}
