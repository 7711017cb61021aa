package report

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/fizzbuzz/compact"
	"github.com/katalvlaran/fizzbuzz/modular"
	"github.com/katalvlaran/fizzbuzz/pattern"
	"github.com/katalvlaran/fizzbuzz/sequence"
)

// RuleDoc is the JSON shape of one divisor rule.
type RuleDoc struct {
	Divisor int64  `json:"divisor"`
	Label   string `json:"label"`
}

// SequenceDoc is the JSON shape of a rendered range.
type SequenceDoc struct {
	Rules  []RuleDoc `json:"rules"`
	From   int64     `json:"from"`
	To     int64     `json:"to"`
	Values []string  `json:"values"`
}

// TableDoc is the JSON shape of one full pattern table.
type TableDoc struct {
	Rules   []RuleDoc `json:"rules"`
	Period  int64     `json:"period"`
	Cells   []int     `json:"cells"`
	Decoder []string  `json:"decoder"`
}

// BatchDoc is the JSON shape of one rendered batch.
type BatchDoc struct {
	Start  int64    `json:"start"`
	End    int64    `json:"end"`
	Values []string `json:"values"`
}

// BatchesDoc is the JSON shape of a batched rendering.
type BatchesDoc struct {
	Rules   []RuleDoc  `json:"rules"`
	Offset  int64      `json:"offset"`
	Batches []BatchDoc `json:"batches"`
}

// RepDoc describes one representation in a comparison.
type RepDoc struct {
	Name   string `json:"name"`
	Cells  int    `json:"cells"`
	Lookup string `json:"lookup"`
}

// CompareDoc is the JSON shape of a representation comparison.
type CompareDoc struct {
	Rules           []RuleDoc `json:"rules"`
	Period          int64     `json:"period"`
	Representations []RepDoc  `json:"representations"`
	Equivalent      bool      `json:"equivalent"`
}

// NewRuleDocs converts a rule slice into its JSON shape.
func NewRuleDocs(rules []pattern.Rule) []RuleDoc {
	docs := make([]RuleDoc, len(rules))
	for i, r := range rules {
		docs[i] = RuleDoc{Divisor: r.Divisor, Label: r.Label}
	}

	return docs
}

// NewTableDoc converts a pattern table into its JSON shape.
func NewTableDoc(t *pattern.Table) TableDoc {
	cells := t.Cells()
	ints := make([]int, len(cells))
	for i, c := range cells {
		ints[i] = int(c)
	}

	return TableDoc{
		Rules:   NewRuleDocs(t.Rules()),
		Period:  t.Period(),
		Cells:   ints,
		Decoder: t.Labels(),
	}
}

// NewBatchDocs converts rendered batches into their JSON shape.
func NewBatchDocs(batches []sequence.Batch) []BatchDoc {
	docs := make([]BatchDoc, len(batches))
	for i, b := range batches {
		docs[i] = BatchDoc{Start: b.Start, End: b.End, Values: b.Values}
	}

	return docs
}

// NewCompareDoc builds the JSON shape of a representation comparison,
// including the equivalence sweep over comparePeriods periods.
func NewCompareDoc(rules []pattern.Rule) (CompareDoc, error) {
	pt, err := pattern.New(rules)
	if err != nil {
		return CompareDoc{}, err
	}
	ct, err := compact.New(rules)
	if err != nil {
		return CompareDoc{}, err
	}
	mt, err := modular.New(rules)
	if err != nil {
		return CompareDoc{}, err
	}

	k := len(rules)
	doc := CompareDoc{
		Rules:  NewRuleDocs(rules),
		Period: pt.Period(),
		Representations: []RepDoc{
			{Name: "vector", Cells: pt.Size(), Lookup: "1 modulo + 1 index"},
			{Name: "compact", Cells: ct.Size(), Lookup: fmt.Sprintf("%d modulo(s) + 1 index", k)},
			{Name: "modular", Cells: mt.Size(), Lookup: fmt.Sprintf("%d modulo(s) + 1 index", k)},
		},
		Equivalent: true,
	}
	for p := int64(1); p <= comparePeriods*pt.Period(); p++ {
		a, err := pt.Render(p)
		if err != nil {
			return CompareDoc{}, err
		}
		b, err := ct.Render(p)
		if err != nil {
			return CompareDoc{}, err
		}
		c, err := mt.Render(p)
		if err != nil {
			return CompareDoc{}, err
		}
		if a != b || a != c {
			doc.Equivalent = false

			break
		}
	}

	return doc, nil
}

// JSON encodes any report document to w, one object per call, trailing
// newline included.
func JSON(w io.Writer, doc any) error {
	return sonic.ConfigDefault.NewEncoder(w).Encode(doc)
}
