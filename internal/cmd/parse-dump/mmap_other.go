//go:build !unix

package main

import (
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
)

func mapFile(name string) (*input, error) {
	data, err := os.ReadFile(filepath.Clean(name))
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}
	return &input{Data: data}, nil
}
