package citations

import (
	"fmt"
	"strconv"
)

// Field precedence tables. Each target field is resolved by trying source
// keys in order: direct keys on the payload first, then keys under the
// nested "metadata" object. First non-empty value wins.
var (
	documentKeys       = []string{"document", "doc_name", "document_name", "title"}
	documentNestedKeys = []string{"document_name", "page_title"}
	scoreKeys          = []string{"relevance_score", "score", "confidence"}
	contentKeys        = []string{"content", "text", "excerpt", "summary"}
	rankKeys           = []string{"rank", "rank_number"}

	metadataKeys = map[string]struct{ direct, nested []string }{
		"source_url":   {direct: []string{"source_url", "url", "link"}, nested: []string{"source_url"}},
		"file_path":    {direct: []string{"file_path", "path"}, nested: []string{"file_path"}},
		"doc_type":     {direct: []string{"doc_type", "type", "format"}, nested: []string{"doc_type"}},
		"notion_url":   {direct: []string{"notion_url", "notion_link"}, nested: []string{"notion_url"}},
		"download_url": {direct: []string{"download_url", "download_link"}, nested: []string{"download_url"}},
		"page_title":   {direct: []string{"page_title", "title"}, nested: []string{"page_title"}},
		"section":      {direct: []string{"section", "chunk", "part"}, nested: []string{"section"}},
	}
)

const defaultRelevanceScore = 0.8

// Normalize converts a heterogeneous raw citation list into canonical
// Citations, index for index. It never fails: malformed entries degrade to a
// placeholder document and missing fields take their defaults, so the output
// always has exactly len(raw) elements in input order.
func Normalize(raw []interface{}) []Citation {
	out := make([]Citation, 0, len(raw))
	for i, item := range raw {
		out = append(out, normalizeOne(item, i))
	}
	return out
}

func normalizeOne(item interface{}, index int) Citation {
	switch v := item.(type) {
	case string:
		return placeholder(v, index)
	case map[string]interface{}:
		return normalizeObject(v, index)
	default:
		// Unknown shape: stringify and wrap.
		return placeholder(fmt.Sprintf("%v", item), index)
	}
}

func placeholder(content string, index int) Citation {
	return Citation{
		Rank:           index + 1,
		Document:       fmt.Sprintf("Document %d", index+1),
		RelevanceScore: defaultRelevanceScore,
		Content:        content,
	}
}

func normalizeObject(obj map[string]interface{}, index int) Citation {
	nested, _ := obj["metadata"].(map[string]interface{})

	c := Citation{
		Rank:           pickInt(obj, rankKeys, index+1),
		Document:       pickChain(obj, nested, documentKeys, documentNestedKeys),
		RelevanceScore: pickFloat(obj, scoreKeys, defaultRelevanceScore),
		Content:        pickChain(obj, nil, contentKeys, nil),
	}
	if c.Document == "" {
		c.Document = fmt.Sprintf("Document %d", index+1)
	}

	c.Metadata = SourceMetadata{
		SourceURL:   pickMeta(obj, nested, "source_url"),
		FilePath:    pickMeta(obj, nested, "file_path"),
		DocType:     pickMeta(obj, nested, "doc_type"),
		NotionURL:   pickMeta(obj, nested, "notion_url"),
		DownloadURL: pickMeta(obj, nested, "download_url"),
		PageTitle:   pickMeta(obj, nested, "page_title"),
		Section:     pickMeta(obj, nested, "section"),
	}
	return c
}

// pickMeta resolves one metadata target field. Nested metadata keys take
// precedence over direct aliases, matching the backend's payload layering.
func pickMeta(obj, nested map[string]interface{}, target string) string {
	chain := metadataKeys[target]
	if v := pickChain(nil, nested, nil, chain.nested); v != "" {
		return v
	}
	return pickChain(obj, nil, chain.direct, nil)
}

func pickChain(obj, nested map[string]interface{}, directKeys, nestedKeys []string) string {
	for _, k := range directKeys {
		if s := asString(obj[k]); s != "" {
			return s
		}
	}
	for _, k := range nestedKeys {
		if s := asString(nested[k]); s != "" {
			return s
		}
	}
	return ""
}

func pickInt(obj map[string]interface{}, keys []string, fallback int) int {
	for _, k := range keys {
		switch v := obj[k].(type) {
		case float64:
			if v > 0 {
				return int(v)
			}
		case int:
			if v > 0 {
				return v
			}
		case string:
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
	}
	return fallback
}

func pickFloat(obj map[string]interface{}, keys []string, fallback float64) float64 {
	for _, k := range keys {
		switch v := obj[k].(type) {
		case float64:
			if v > 0 {
				return v
			}
		case int:
			if v > 0 {
				return float64(v)
			}
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
				return f
			}
		}
	}
	return fallback
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
