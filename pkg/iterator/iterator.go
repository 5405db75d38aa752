package iterator

import "iter"

// Collect2 drains a two-valued iterator into paired slices, index for
// index. Handy in tests for comparing a whole token stream at once.
func Collect2[K, V any](it iter.Seq2[K, V]) ([]K, []V) {
	var lefts []K
	var rights []V
	for left, right := range it {
		lefts = append(lefts, left)
		rights = append(rights, right)
	}
	return lefts, rights
}
