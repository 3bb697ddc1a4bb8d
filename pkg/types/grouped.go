package types

// GroupedEntries maps a color name to the entries observed under that name.
// Keys keep the order in which each name was first added; entries keep
// their relative order within a bucket. Every entry is stored under its own
// ColorName, so the mapping cannot hold a misfiled entry.
//
// The zero value is an empty mapping ready for Add.
type GroupedEntries struct {
	names   []string
	buckets map[string][]ColorEntry
}

// Add appends entry to the bucket named by entry.ColorName (normalized).
// Add is meant for building a mapping; callers should treat a finished
// GroupedEntries as read-only.
func (g *GroupedEntries) Add(entry ColorEntry) {
	entry.ColorName = NormalizeColorName(entry.ColorName)
	if g.buckets == nil {
		g.buckets = make(map[string][]ColorEntry)
	}
	if _, ok := g.buckets[entry.ColorName]; !ok {
		g.names = append(g.names, entry.ColorName)
	}
	g.buckets[entry.ColorName] = append(g.buckets[entry.ColorName], entry)
}

// Names returns the bucket keys in first-occurrence order.
func (g GroupedEntries) Names() []string {
	return append([]string(nil), g.names...)
}

// Entries returns a copy of the bucket for name, or nil if absent.
func (g GroupedEntries) Entries(name string) []ColorEntry {
	bucket, ok := g.buckets[name]
	if !ok {
		return nil
	}
	return append([]ColorEntry(nil), bucket...)
}

// Has reports whether a bucket exists for name.
func (g GroupedEntries) Has(name string) bool {
	_, ok := g.buckets[name]
	return ok
}

// Count returns the number of entries stored under name.
func (g GroupedEntries) Count(name string) int {
	return len(g.buckets[name])
}

// Len returns the number of distinct names.
func (g GroupedEntries) Len() int {
	return len(g.names)
}

// Total returns the number of entries across all buckets.
func (g GroupedEntries) Total() int {
	total := 0
	for _, bucket := range g.buckets {
		total += len(bucket)
	}
	return total
}
