package citations

import (
	"reflect"
	"testing"
)

func cit(rank int, doc, url, content string) Citation {
	return Citation{
		Rank:           rank,
		Document:       doc,
		RelevanceScore: 0.8,
		Content:        content,
		Metadata:       SourceMetadata{SourceURL: url},
	}
}

func TestConsolidateEmpty(t *testing.T) {
	got := Consolidate(nil)
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestConsolidateByURL(t *testing.T) {
	input := []Citation{
		cit(1, "Fund Guide", "https://x/a.pdf", "first"),
		cit(2, "Fund Guide", "https://x/a.pdf", "second"),
		cit(3, "Mentor Network", "https://x/b", "third"),
	}

	got := Consolidate(input)
	if len(got) != 2 {
		t.Fatalf("groups = %d, want 2", len(got))
	}

	if !reflect.DeepEqual(got[0].OriginalRanks, []int{1, 2}) {
		t.Errorf("group 0 ranks = %v, want [1 2]", got[0].OriginalRanks)
	}
	if got[0].MemberCount != 2 {
		t.Errorf("group 0 members = %d, want 2", got[0].MemberCount)
	}
	if got[0].Representative.Document != "Fund Guide" {
		t.Errorf("group 0 representative = %q", got[0].Representative.Document)
	}
	if got[0].Content != "first\n\n....\n\nsecond" {
		t.Errorf("group 0 content = %q", got[0].Content)
	}

	if !reflect.DeepEqual(got[1].OriginalRanks, []int{3}) {
		t.Errorf("group 1 ranks = %v, want [3]", got[1].OriginalRanks)
	}
}

func TestConsolidateSameNameNoURLStaysSeparate(t *testing.T) {
	input := []Citation{
		cit(1, "Handbook", "", "a"),
		cit(2, "Handbook", "", "b"),
	}

	got := Consolidate(input)
	if len(got) != 2 {
		t.Fatalf("groups = %d, want 2 (document|rank key must keep them apart)", len(got))
	}
}

func TestConsolidateEveryRankAppearsOnce(t *testing.T) {
	input := []Citation{
		cit(3, "C", "https://x/c", "c"),
		cit(1, "A", "https://x/a", "a1"),
		cit(4, "A", "https://x/a", "a2"),
		cit(2, "B", "", "b"),
	}

	got := Consolidate(input)

	seen := map[int]int{}
	for _, g := range got {
		for _, r := range g.OriginalRanks {
			seen[r]++
		}
	}
	for _, c := range input {
		if seen[c.Rank] != 1 {
			t.Errorf("rank %d appears %d times, want exactly 1", c.Rank, seen[c.Rank])
		}
	}

	// Groups strictly ascending by minimum rank.
	for i := 1; i < len(got); i++ {
		if got[i-1].OriginalRanks[0] >= got[i].OriginalRanks[0] {
			t.Errorf("groups out of order at %d: %v then %v",
				i, got[i-1].OriginalRanks, got[i].OriginalRanks)
		}
	}
}

func TestConsolidateIdempotent(t *testing.T) {
	input := []Citation{
		cit(1, "A", "https://x/a", "a1"),
		cit(2, "A", "https://x/a", "a2"),
		cit(3, "B", "https://x/b", "b"),
	}

	first := Consolidate(input)

	// Re-expand groups back to individual citations, preserving ranks.
	var flattened []Citation
	for _, g := range first {
		for _, r := range g.OriginalRanks {
			for _, c := range input {
				if c.Rank == r {
					flattened = append(flattened, c)
				}
			}
		}
	}

	second := Consolidate(flattened)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("regrouping flattened output changed the groups:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestGroupForRank(t *testing.T) {
	groups := Consolidate([]Citation{
		cit(1, "A", "https://x/a", "a1"),
		cit(2, "A", "https://x/a", "a2"),
		cit(3, "B", "https://x/b", "b"),
	})

	g, ok := GroupForRank(groups, 2)
	if !ok {
		t.Fatal("rank 2 not found")
	}
	if g.Representative.Document != "A" {
		t.Errorf("rank 2 resolved to %q, want A", g.Representative.Document)
	}

	if _, ok := GroupForRank(groups, 9); ok {
		t.Error("rank 9 should not resolve")
	}
}
