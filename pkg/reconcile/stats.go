package reconcile

import (
	"sort"

	"github.com/isaacfidler/cratedig/pkg/types"
)

// CategoryCount is the number of links under one category.
type CategoryCount struct {
	Category types.CategoryPath
	Count    int
}

// Stats is a read-only aggregation over the link store.
type Stats struct {
	// TotalSources is the number of tracked source files.
	TotalSources int

	// Categories holds per-category link counts, sorted by category path.
	Categories []CategoryCount
}

// Stats aggregates per-category link counts from the store. No mutation.
func (r *Reconciler) Stats() Stats {
	counts := make(map[types.CategoryPath]int)
	entries := r.store.All()
	for _, records := range entries {
		for _, rec := range records {
			counts[rec.Category]++
		}
	}

	stats := Stats{TotalSources: len(entries)}
	for category, count := range counts {
		stats.Categories = append(stats.Categories, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(stats.Categories, func(i, j int) bool {
		return stats.Categories[i].Category < stats.Categories[j].Category
	})
	return stats
}
