package citations

// SourceMetadata carries the locator fields the retrieval backend attaches
// to a citation. All fields are optional.
type SourceMetadata struct {
	SourceURL   string `json:"source_url,omitempty"`
	FilePath    string `json:"file_path,omitempty"`
	DocType     string `json:"doc_type,omitempty"`
	NotionURL   string `json:"notion_url,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	PageTitle   string `json:"page_title,omitempty"`
	Section     string `json:"section,omitempty"`
}

// Citation is the canonical shape of one retrieval citation.
// Rank is 1-based and unique within a single response; it is the only key a
// renderer may use to resolve an inline [n] marker.
type Citation struct {
	Rank           int            `json:"rank"`
	Document       string         `json:"document"`
	RelevanceScore float64        `json:"relevance_score"`
	Content        string         `json:"content"`
	Metadata       SourceMetadata `json:"metadata"`
}

// ConsolidatedGroup is one display unit per unique source. OriginalRanks
// holds every raw rank folded into the group, ascending.
type ConsolidatedGroup struct {
	Representative Citation `json:"representative"`
	OriginalRanks  []int    `json:"original_ranks"`
	Content        string   `json:"content"`
	MemberCount    int      `json:"member_count"`
}

// ContainsRank reports whether a raw rank folds into this group.
func (g *ConsolidatedGroup) ContainsRank(rank int) bool {
	for _, r := range g.OriginalRanks {
		if r == rank {
			return true
		}
	}
	return false
}
