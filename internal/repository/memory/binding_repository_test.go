package memory

import (
	"testing"

	"ventures-chat-be/pkg/citations"
	"ventures-chat-be/pkg/correlation"
)

func groupsFor(doc string) []citations.ConsolidatedGroup {
	return []citations.ConsolidatedGroup{
		{
			Representative: citations.Citation{Rank: 1, Document: doc, RelevanceScore: 0.9},
			OriginalRanks:  []int{1},
			MemberCount:    1,
		},
	}
}

func TestStageAndLookupByFingerprint(t *testing.T) {
	repo := NewBindingRepository()
	response := "Yale offers seed funding through the Innovation Fund."
	fp := correlation.Fingerprint(response)

	repo.Stage(&correlation.Binding{
		Fingerprint:  fp,
		ResponseText: response,
		Groups:       groupsFor("Fund Guide"),
	})

	got := repo.Lookup("unknown-id", response)
	if len(got) != 1 || got[0].Representative.Document != "Fund Guide" {
		t.Fatalf("fingerprint lookup failed, got %+v", got)
	}
}

func TestPromoteRetainsFingerprintEntry(t *testing.T) {
	repo := NewBindingRepository()
	response := "The mentorship network connects founders with experienced investors."
	fp := correlation.Fingerprint(response)

	repo.Stage(&correlation.Binding{
		Fingerprint:  fp,
		ResponseText: response,
		Groups:       groupsFor("Mentor Network"),
	})

	if !repo.Promote(fp, "msg-7") {
		t.Fatal("promote returned false for staged binding")
	}

	// Both keys resolve after promotion.
	if got := repo.Lookup("msg-7", ""); len(got) != 1 {
		t.Error("lookup by message id failed after promotion")
	}
	if got := repo.Lookup("other", response); len(got) != 1 {
		t.Error("fingerprint fallback lost after promotion")
	}
}

func TestPromoteUnknownFingerprint(t *testing.T) {
	repo := NewBindingRepository()
	if repo.Promote("content_missing", "msg-1") {
		t.Error("promote of unknown fingerprint should return false")
	}
}

func TestLookupLinearScanFallback(t *testing.T) {
	repo := NewBindingRepository()
	response := "A long answer about licensing university intellectual property to a startup entity."

	repo.Stage(&correlation.Binding{
		Fingerprint:  "content_somethingelse", // deliberately mismatched key
		ResponseText: response,
		Groups:       groupsFor("Licensing Guide"),
	})

	got := repo.Lookup("no-such-id", response)
	if len(got) != 1 || got[0].Representative.Document != "Licensing Guide" {
		t.Fatalf("linear scan fallback failed, got %+v", got)
	}
}

func TestLookupMissReturnsNil(t *testing.T) {
	repo := NewBindingRepository()
	if got := repo.Lookup("nope", "unrelated content"); got != nil {
		t.Errorf("lookup miss = %+v, want nil", got)
	}
}

func TestClearPendingKeepsLinked(t *testing.T) {
	repo := NewBindingRepository()

	repo.Stage(&correlation.Binding{Fingerprint: "content_a", ResponseText: "aaa", Groups: groupsFor("A")})
	repo.Stage(&correlation.Binding{Fingerprint: "content_b", ResponseText: "bbb", Groups: groupsFor("B")})
	repo.Promote("content_a", "msg-a")

	repo.ClearPending()

	if _, ok := repo.Get("msg-a"); !ok {
		t.Error("linked binding dropped by ClearPending")
	}
	if _, ok := repo.Get("content_a"); !ok {
		t.Error("linked fingerprint fallback dropped by ClearPending")
	}
	if _, ok := repo.Get("content_b"); ok {
		t.Error("pending binding survived ClearPending")
	}
}

func TestIndependentBindingsDoNotInterfere(t *testing.T) {
	repo := NewBindingRepository()

	r1 := "First response about fellowship funding options."
	r2 := "Second response about patent filing timelines."
	repo.Stage(&correlation.Binding{Fingerprint: correlation.Fingerprint(r1), ResponseText: r1, Groups: groupsFor("Fellowships")})
	repo.Stage(&correlation.Binding{Fingerprint: correlation.Fingerprint(r2), ResponseText: r2, Groups: groupsFor("Patents")})

	if got := repo.Lookup("", r1); len(got) != 1 || got[0].Representative.Document != "Fellowships" {
		t.Errorf("r1 lookup = %+v", got)
	}
	if got := repo.Lookup("", r2); len(got) != 1 || got[0].Representative.Document != "Patents" {
		t.Errorf("r2 lookup = %+v", got)
	}
}
