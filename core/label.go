package core

// Label carries provenance through the pipeline: which source produced an
// item, which rule boosted it. Value and Source semantics belong to the
// producing node; the core only standardizes the merge rule.
type Label struct {
	Value  string `json:"value"`
	Source string `json:"source"` // recall / rank / rule / rerank ...
}

// MergeLabel merges two labels with the same key, keeping history:
// values accumulate with '|', sources with ','.
func MergeLabel(existing, incoming Label) Label {
	if existing.Value == "" {
		return incoming
	}
	if incoming.Value == "" {
		return existing
	}

	merged := existing
	merged.Value = existing.Value + "|" + incoming.Value
	switch {
	case existing.Source == "":
		merged.Source = incoming.Source
	case incoming.Source == "":
		merged.Source = existing.Source
	default:
		merged.Source = existing.Source + "," + incoming.Source
	}
	return merged
}
