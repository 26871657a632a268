//go:build unix

package main

import (
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"golang.org/x/sys/unix"
)

// mapFile maps file read-only. Mapping is page aligned, so any type can
// be read from its start.
func mapFile(name string) (*input, error) {
	f, err := os.Open(filepath.Clean(name))
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	// Mapping stays valid after descriptor is closed.
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat")
	}
	if stat.Size() == 0 {
		return &input{}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(stat.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrap(err, "mmap")
	}
	return &input{
		Data:   data,
		Mapped: true,
		close: func() error {
			return unix.Munmap(data)
		},
	}, nil
}
