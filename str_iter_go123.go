//go:build go1.23

package parse

import "iter"

// All returns sequence of remaining strings, advancing it.
func (it *StrIter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			s, ok := it.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}
