package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/multierr"
)

// input is borrowed buffer with file contents.
type input struct {
	Data   []byte
	Mapped bool

	close func() error
}

// Close releases Data. Data must not be used after Close.
func (i *input) Close() error {
	if i.close == nil {
		return nil
	}
	return i.close()
}

func open(name string) (*input, error) {
	switch filepath.Ext(name) {
	case ".zst":
		return decompress(name, func(r io.Reader) ([]byte, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, errors.Wrap(err, "zstd")
			}
			defer d.Close()
			return io.ReadAll(d)
		})
	case ".lz4":
		return decompress(name, func(r io.Reader) ([]byte, error) {
			return io.ReadAll(lz4.NewReader(r))
		})
	default:
		return mapFile(name)
	}
}

func decompress(name string, read func(r io.Reader) ([]byte, error)) (_ *input, re error) {
	f, err := os.Open(filepath.Clean(name))
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer func() {
		if err := f.Close(); err != nil {
			re = multierr.Append(re, errors.Wrap(err, "close"))
		}
	}()

	data, err := read(f)
	if err != nil {
		return nil, errors.Wrap(err, "decompress")
	}
	return &input{Data: data}, nil
}
