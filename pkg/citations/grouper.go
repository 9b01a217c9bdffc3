package citations

import (
	"fmt"
	"sort"
	"strings"
)

// contentSeparator joins member excerpts inside one consolidated group.
const contentSeparator = "\n\n....\n\n"

// sourceKey identifies the unique source behind a citation. URLs win so that
// distinct sub-pages of the same document stay separate; without a URL the
// rank is folded into the key so two same-named documents never merge.
func sourceKey(c Citation) string {
	if c.Metadata.SourceURL != "" {
		return c.Metadata.SourceURL
	}
	if c.Metadata.NotionURL != "" {
		return c.Metadata.NotionURL
	}
	doc := c.Document
	if doc == "" {
		doc = "Unknown"
	}
	return fmt.Sprintf("%s|%d", doc, c.Rank)
}

// Consolidate folds normalized citations into one group per unique source.
// Every input rank lands in exactly one group's OriginalRanks, and groups
// come back sorted ascending by their smallest rank.
func Consolidate(cits []Citation) []ConsolidatedGroup {
	if len(cits) == 0 {
		return []ConsolidatedGroup{}
	}

	buckets := make(map[string][]Citation)
	var order []string
	for _, c := range cits {
		key := sourceKey(c)
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], c)
	}

	groups := make([]ConsolidatedGroup, 0, len(order))
	for _, key := range order {
		bucket := buckets[key]

		ranks := make([]int, len(bucket))
		parts := make([]string, len(bucket))
		for i, c := range bucket {
			ranks[i] = c.Rank
			parts[i] = c.Content
		}
		sort.Ints(ranks)

		groups = append(groups, ConsolidatedGroup{
			Representative: bucket[0],
			OriginalRanks:  ranks,
			Content:        strings.Join(parts, contentSeparator),
			MemberCount:    len(bucket),
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].OriginalRanks[0] < groups[j].OriginalRanks[0]
	})
	return groups
}

// GroupForRank finds the group whose OriginalRanks contains the given rank.
// Renderers use this to resolve a clicked [n] marker.
func GroupForRank(groups []ConsolidatedGroup, rank int) (ConsolidatedGroup, bool) {
	for _, g := range groups {
		if g.ContainsRank(rank) {
			return g, true
		}
	}
	return ConsolidatedGroup{}, false
}
