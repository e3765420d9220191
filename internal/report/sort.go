package report

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"mediadex/internal/catalog"
)

// SortByName orders lookup entities for display using English collation, so
// accented names interleave naturally instead of sorting after "z".
func SortByName(entities []catalog.Entity) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(entities, func(i, j int) bool {
		return c.CompareString(entities[i].Name, entities[j].Name) < 0
	})
}
