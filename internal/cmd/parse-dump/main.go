// Binary parse-dump prints typed arrays and string tables stored in a file.
//
// Plain files are memory-mapped where supported, ".zst" and ".lz4" files
// are decompressed into memory first.
package main

import (
	"bufio"
	"context"
	"flag"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/city"
	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/LibertyOS-Development/parse-binary/internal/cmd/app"
)

func main() {
	app.Run("parse-dump", run)
}

func run(ctx context.Context, lg *zap.Logger) (re error) {
	var arg struct {
		Type   string
		Offset int
		Count  int
		Strs   bool
	}
	flag.StringVar(&arg.Type, "type", "u8", "element type: u8, u16, u32, u64, u128, i8, i16, i32, i64, i128, uuid")
	flag.IntVar(&arg.Offset, "off", 0, "offset in bytes")
	flag.IntVar(&arg.Count, "n", -1, "count of elements, -1 for whole input")
	flag.BoolVar(&arg.Strs, "strs", false, "dump null-terminated string table")
	flag.Parse()
	if flag.NArg() != 1 {
		return errors.New("usage: parse-dump [flags] FILE")
	}

	name := flag.Arg(0)
	in, err := open(name)
	if err != nil {
		return errors.Wrap(err, "open")
	}
	defer func() {
		if err := in.Close(); err != nil {
			re = multierr.Append(re, errors.Wrap(err, "close"))
		}
	}()
	lg.Info("Input",
		zap.String("path", name),
		zap.String("size", humanize.Bytes(uint64(len(in.Data)))),
		zap.Uint64("city64", city.CH64(in.Data)),
		zap.Bool("mapped", in.Mapped),
	)
	if arg.Offset < 0 || arg.Offset > len(in.Data) {
		return errors.Errorf("offset %d out of range [0, %d]", arg.Offset, len(in.Data))
	}

	w := bufio.NewWriter(os.Stdout)
	buf := in.Data[arg.Offset:]
	var n int
	if arg.Strs {
		n, err = dumpStrs(w, buf)
	} else {
		n, err = dump(w, arg.Type, buf, arg.Count)
	}
	if err != nil {
		return errors.Wrap(err, "dump")
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}
	lg.Info("Done", zap.Int("count", n))

	return ctx.Err()
}
