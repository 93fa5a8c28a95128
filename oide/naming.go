package oide

import "strconv"

// indexedName builds a feature name like "value3" for the i'th element of
// a vector atom being flattened by VisitNamed.
func indexedName(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}
