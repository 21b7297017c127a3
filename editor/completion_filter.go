package editor

// CompletionFilterContext is passed to a custom CompletionFilter.
type CompletionFilterContext struct {
	Query string
	Items []CompletionItem
}

// CompletionFilterResult selects and orders items for display. Indices that
// fall outside Items are dropped.
type CompletionFilterResult struct {
	VisibleIndices []int
}

// CompletionFilter lets hosts rank or narrow suggestions. The items are
// already restricted to records with a shortcode starting with Query.
type CompletionFilter func(CompletionFilterContext) CompletionFilterResult

func defaultCompletionFilter(ctx CompletionFilterContext) CompletionFilterResult {
	out := make([]int, len(ctx.Items))
	for i := range ctx.Items {
		out[i] = i
	}
	return CompletionFilterResult{VisibleIndices: out}
}

func (m *Model) filterCompletion(query string, items []CompletionItem) []int {
	f := m.cfg.CompletionFilter
	if f == nil {
		f = defaultCompletionFilter
	}
	res := f(CompletionFilterContext{Query: query, Items: cloneItems(items)})

	seen := make(map[int]bool, len(res.VisibleIndices))
	out := make([]int, 0, len(res.VisibleIndices))
	for _, idx := range res.VisibleIndices {
		if idx < 0 || idx >= len(items) || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}
