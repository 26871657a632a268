//go:build tools

package parse

import (
	_ "github.com/dmarkham/enumer"
)
