// Package override applies manual order corrections on top of the matcher's
// rendered word sequence. The automatic aligner is right most of the time;
// when it is not, a page-scoped override record fixes the result without
// touching the reference data.
package override

import "fmt"

// Scope selects which part of a page's sequence an override governs.
type Scope string

const (
	ScopeWholePage       Scope = "whole_page"
	ScopeLineRange       Scope = "line_range"
	ScopeCustomSelection Scope = "custom_selection"
)

// Operation is the correction to perform. Exactly one concrete type per
// operation, each carrying only the payload that operation uses.
type Operation interface {
	Name() string
	isOperation()
}

// KeyRank pairs a glossary unique key with a pre-computed position rank.
// Rank computation (a geometric sweep over rendered word boxes, descending
// horizontally for right-to-left layout) belongs to the presentation layer;
// the core only consumes the resulting list.
type KeyRank struct {
	Key  string `yaml:"key"`
	Rank int    `yaml:"rank"`
}

// RebuildIndices reorders the scope by externally supplied position ranks.
type RebuildIndices struct {
	Ranks []KeyRank
}

// OffsetShift re-binds each token in the scope to the meaning a fixed number
// of sequence positions away, correcting consistent off-by-N misalignment
// between text and glossary.
type OffsetShift struct {
	Amount int
}

// LockedOrder replaces the scope's sequence with an explicit key list, used
// verbatim; rendered words absent from the list are dropped.
type LockedOrder struct {
	Keys []string
}

func (RebuildIndices) Name() string { return "rebuild_indices" }
func (OffsetShift) Name() string    { return "offset_shift" }
func (LockedOrder) Name() string    { return "locked_order" }

func (RebuildIndices) isOperation() {}
func (OffsetShift) isOperation()    {}
func (LockedOrder) isOperation()    {}

// Override is one page-scoped correction record. At most one override exists
// per (page, scope) pair; saving a new one replaces the old record outright.
// Overrides are persisted locally and never synced remotely.
type Override struct {
	PageNumber int
	Scope      Scope
	// LineStart and LineEnd bound the scope for ScopeLineRange (inclusive,
	// zero-based page line indexes).
	LineStart int
	LineEnd   int
	// SelectionKeys lists the member keys for ScopeCustomSelection.
	SelectionKeys []string
	Op            Operation
}

// Validate checks structural consistency before an override is stored.
func (o Override) Validate() error {
	if o.PageNumber < 1 {
		return fmt.Errorf("page number must be positive, got %d", o.PageNumber)
	}
	switch o.Scope {
	case ScopeWholePage:
	case ScopeLineRange:
		if o.LineStart < 0 || o.LineEnd < o.LineStart {
			return fmt.Errorf("invalid line range %d..%d", o.LineStart, o.LineEnd)
		}
	case ScopeCustomSelection:
		if len(o.SelectionKeys) == 0 {
			return fmt.Errorf("custom selection requires selection keys")
		}
	default:
		return fmt.Errorf("unknown scope %q", o.Scope)
	}

	switch op := o.Op.(type) {
	case RebuildIndices:
		if len(op.Ranks) == 0 {
			return fmt.Errorf("rebuild_indices requires ranks")
		}
	case OffsetShift:
		if op.Amount == 0 {
			return fmt.Errorf("offset_shift requires a non-zero amount")
		}
	case LockedOrder:
		if len(op.Keys) == 0 {
			return fmt.Errorf("locked_order requires keys")
		}
	case nil:
		return fmt.Errorf("missing operation")
	default:
		return fmt.Errorf("unknown operation %q", op.Name())
	}
	return nil
}

// overrideDoc is the flat YAML shape of an Override. The tagged Operation is
// folded into operation plus its payload field on disk.
type overrideDoc struct {
	PageNumber    int       `yaml:"page_number"`
	Scope         Scope     `yaml:"scope"`
	LineStart     int       `yaml:"line_start,omitempty"`
	LineEnd       int       `yaml:"line_end,omitempty"`
	SelectionKeys []string  `yaml:"selection_keys,omitempty"`
	Operation     string    `yaml:"operation"`
	OffsetAmount  int       `yaml:"offset_amount,omitempty"`
	OrderedKeys   []string  `yaml:"ordered_keys,omitempty"`
	Ranks         []KeyRank `yaml:"ranks,omitempty"`
}

// MarshalYAML flattens the tagged operation for storage.
func (o Override) MarshalYAML() (interface{}, error) {
	doc := overrideDoc{
		PageNumber:    o.PageNumber,
		Scope:         o.Scope,
		LineStart:     o.LineStart,
		LineEnd:       o.LineEnd,
		SelectionKeys: o.SelectionKeys,
	}
	switch op := o.Op.(type) {
	case RebuildIndices:
		doc.Operation = op.Name()
		doc.Ranks = op.Ranks
	case OffsetShift:
		doc.Operation = op.Name()
		doc.OffsetAmount = op.Amount
	case LockedOrder:
		doc.Operation = op.Name()
		doc.OrderedKeys = op.Keys
	default:
		return nil, fmt.Errorf("cannot marshal override without an operation")
	}
	return doc, nil
}

// UnmarshalYAML rebuilds the tagged operation from the flat document,
// rejecting unknown operation names at the boundary.
func (o *Override) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var doc overrideDoc
	if err := unmarshal(&doc); err != nil {
		return err
	}

	*o = Override{
		PageNumber:    doc.PageNumber,
		Scope:         doc.Scope,
		LineStart:     doc.LineStart,
		LineEnd:       doc.LineEnd,
		SelectionKeys: doc.SelectionKeys,
	}
	switch doc.Operation {
	case "rebuild_indices":
		o.Op = RebuildIndices{Ranks: doc.Ranks}
	case "offset_shift":
		o.Op = OffsetShift{Amount: doc.OffsetAmount}
	case "locked_order":
		o.Op = LockedOrder{Keys: doc.OrderedKeys}
	default:
		return fmt.Errorf("unknown override operation %q", doc.Operation)
	}
	return nil
}
