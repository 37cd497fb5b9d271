package core

// Item is the unified carrier flowing through the pipeline: a catalog
// article plus the score and explanations accumulated along the way.
// Reasons are display strings for the reader; Labels are provenance for
// explain/observability.
type Item struct {
	ID      string
	Score   float64
	Article *Article
	Reasons []string
	Labels  map[string]Label
}

func NewItem(id string) *Item {
	return &Item{
		ID:     id,
		Labels: make(map[string]Label),
	}
}

// NewArticleItem wraps a catalog article as a pipeline item.
func NewArticleItem(a *Article) *Item {
	it := NewItem(a.ID)
	it.Article = a
	return it
}

// PutLabel writes a label; same-key labels accumulate per MergeLabel.
func (it *Item) PutLabel(key string, lbl Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}

// GetLabel reads a label by key.
func (it *Item) GetLabel(key string) (Label, bool) {
	if it.Labels == nil {
		return Label{}, false
	}
	lbl, ok := it.Labels[key]
	return lbl, ok
}

// AddReason appends a display reason, preserving insertion order.
func (it *Item) AddReason(reason string) {
	it.Reasons = append(it.Reasons, reason)
}
