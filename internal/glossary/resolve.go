package glossary

import "sort"

// OverrideOp tags a shadow record.
type OverrideOp string

const (
	OverrideOpEdit   OverrideOp = "edit"
	OverrideOpAdd    OverrideOp = "add"
	OverrideOpDelete OverrideOp = "delete"
)

// Override shadows one base entry without mutating it: an edit replaces the
// record, an add introduces one the base set lacks, and a delete is a
// tombstone. Entry is nil for deletes.
type Override struct {
	UniqueKey string     `db:"unique_key"`
	Op        OverrideOp `db:"op"`
	Entry     *Entry
}

// resolution is the per-key outcome of merging base data with overrides:
// either an active entry or a tombstone.
type resolution struct {
	entry   *Entry
	deleted bool
}

// Resolve merges base entries with their shadow records and returns the
// effective entry set for a page. Each key is resolved exactly once into an
// active-or-deleted variant, instead of re-filtering separate edit/add/delete
// collections on every access. Added entries are appended in authored
// reading order; the result's overall order is base order then additions.
func Resolve(base []Entry, overrides []Override) []Entry {
	resolved := make(map[string]resolution, len(overrides))
	for _, ov := range overrides {
		switch ov.Op {
		case OverrideOpDelete:
			resolved[ov.UniqueKey] = resolution{deleted: true}
		case OverrideOpEdit, OverrideOpAdd:
			if ov.Entry != nil {
				entry := *ov.Entry
				entry.UniqueKey = ov.UniqueKey
				resolved[ov.UniqueKey] = resolution{entry: &entry}
			}
		}
	}

	effective := make([]Entry, 0, len(base))
	seen := make(map[string]bool, len(base))
	for _, entry := range base {
		entry.EnsureKey()
		seen[entry.UniqueKey] = true

		res, ok := resolved[entry.UniqueKey]
		if !ok {
			effective = append(effective, entry)
			continue
		}
		if res.deleted {
			continue
		}
		effective = append(effective, *res.entry)
	}

	var added []Entry
	for key, res := range resolved {
		if res.deleted || seen[key] {
			continue
		}
		added = append(added, *res.entry)
	}
	sort.Slice(added, func(i, j int) bool {
		if added[i].Order != added[j].Order {
			return added[i].Order < added[j].Order
		}
		return added[i].UniqueKey < added[j].UniqueKey
	})

	return append(effective, added...)
}
