package override

import (
	"sort"

	"github.com/mushafapp/ghareeb/internal/align"
)

// scopeOrder fixes the application order when a page carries overrides for
// several scopes: broad corrections first, narrow ones on top.
var scopeOrder = map[Scope]int{
	ScopeWholePage:       0,
	ScopeLineRange:       1,
	ScopeCustomSelection: 2,
}

// ApplyAll applies every override for a page to a rendered sequence, in
// whole-page, line-range, custom-selection order.
func ApplyAll(items []align.SequenceItem, overrides []Override) []align.SequenceItem {
	sorted := make([]Override, len(overrides))
	copy(sorted, overrides)
	sort.SliceStable(sorted, func(i, j int) bool {
		return scopeOrder[sorted[i].Scope] < scopeOrder[sorted[j].Scope]
	})

	for _, ov := range sorted {
		items = Apply(items, ov)
	}
	return items
}

// Apply applies one override as a post-processing pass over the sequence
// builder's output. Out-of-scope items are untouched; the in-scope run is
// replaced in place by the corrected run, which may be shorter.
func Apply(items []align.SequenceItem, ov Override) []align.SequenceItem {
	if ov.Op == nil {
		return items
	}

	inScope := make([]bool, len(items))
	var scoped []align.SequenceItem
	for i, item := range items {
		if ov.contains(item) {
			inScope[i] = true
			scoped = append(scoped, item)
		}
	}
	if len(scoped) == 0 {
		return items
	}

	var corrected []align.SequenceItem
	switch op := ov.Op.(type) {
	case LockedOrder:
		corrected = lockOrder(scoped, op.Keys)
	case OffsetShift:
		corrected = shiftBindings(scoped, op.Amount)
	case RebuildIndices:
		corrected = rebuildOrder(scoped, op.Ranks)
	}

	out := make([]align.SequenceItem, 0, len(items))
	spliced := false
	for i, item := range items {
		if !inScope[i] {
			out = append(out, item)
			continue
		}
		if !spliced {
			out = append(out, corrected...)
			spliced = true
		}
	}
	return out
}

func (o Override) contains(item align.SequenceItem) bool {
	switch o.Scope {
	case ScopeLineRange:
		return item.Line >= o.LineStart && item.Line <= o.LineEnd
	case ScopeCustomSelection:
		for _, key := range o.SelectionKeys {
			if key == item.Entry.UniqueKey {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// lockOrder replaces the scope with the explicit key list, verbatim. Keys
// without a rendered word on the page are skipped; rendered words not named
// in the list are dropped.
func lockOrder(scoped []align.SequenceItem, keys []string) []align.SequenceItem {
	byKey := make(map[string]align.SequenceItem, len(scoped))
	for _, item := range scoped {
		if _, ok := byKey[item.Entry.UniqueKey]; !ok {
			byKey[item.Entry.UniqueKey] = item
		}
	}

	out := make([]align.SequenceItem, 0, len(keys))
	for _, key := range keys {
		if item, ok := byKey[key]; ok {
			out = append(out, item)
		}
	}
	return out
}

// shiftBindings keeps every token position but re-binds its meaning to the
// entry `amount` sequence positions earlier. Positions whose source falls
// outside the scope are dropped rather than wrapped.
func shiftBindings(scoped []align.SequenceItem, amount int) []align.SequenceItem {
	out := make([]align.SequenceItem, 0, len(scoped))
	for i, item := range scoped {
		source := i - amount
		if source < 0 || source >= len(scoped) {
			continue
		}
		item.Entry = scoped[source].Entry
		out = append(out, item)
	}
	return out
}

// rebuildOrder reorders the scope by the supplied ranks. Items without a
// rank keep their relative order after all ranked ones.
func rebuildOrder(scoped []align.SequenceItem, ranks []KeyRank) []align.SequenceItem {
	rankOf := make(map[string]int, len(ranks))
	for _, kr := range ranks {
		if _, ok := rankOf[kr.Key]; !ok {
			rankOf[kr.Key] = kr.Rank
		}
	}

	out := make([]align.SequenceItem, len(scoped))
	copy(out, scoped)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iOK := rankOf[out[i].Entry.UniqueKey]
		rj, jOK := rankOf[out[j].Entry.UniqueKey]
		switch {
		case iOK && jOK:
			return ri < rj
		case iOK:
			return true
		default:
			return false
		}
	})
	return out
}
