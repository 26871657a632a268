// Package gold implements golden files.
package gold

import (
	"flag"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

// Bytes checks data against golden file "<name>.raw".
//
// Name defaults to test name.
func Bytes(t testing.TB, data []byte, name ...string) {
	t.Helper()

	elems := withSuffix(t, name, ".raw")
	if Update {
		writeFile(t, data, elems...)
		return
	}
	require.Equal(t, ReadFile(t, elems...), data, "golden file %s mismatch", path.Join(elems...))
}

// Str checks s against golden file with provided name.
//
// Name defaults to test name with ".txt" suffix.
func Str(t testing.TB, s string, name ...string) {
	t.Helper()

	elems := name
	if len(elems) == 0 {
		elems = withSuffix(t, nil, ".txt")
	}
	if Update {
		writeFile(t, []byte(s), elems...)
		return
	}
	require.Equal(t, string(ReadFile(t, elems...)), s, "golden file %s mismatch", path.Join(elems...))
}

func withSuffix(t testing.TB, name []string, suffix string) []string {
	if len(name) == 0 {
		return []string{strings.ReplaceAll(t.Name(), "/", "_") + suffix}
	}
	elems := append([]string(nil), name...)
	elems[len(elems)-1] += suffix
	return elems
}

func writeFile(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	p := Path(elems...)
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		t.Fatalf("golden dir: %+v", err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}
}
