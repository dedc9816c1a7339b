// Copyright Loideroi Labs, 2026. All rights reserved.

// Package inline turns fact values into Inline XBRL markup fragments. It
// decides numeric-vs-text representation, chains continuations for
// oversized text blocks, registers hidden enumeration facts, and wraps
// structural content in exclusion markers.
// Implements: prd002-inline-tagging (R1-R4); docs/ARCHITECTURE § Tagging.
package inline

import (
	"fmt"
	"strings"

	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/facts"
	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// HiddenFact is one enumeration fact registered for the hidden block. The
// visible document shows the label; the machine value (a taxonomy URI)
// lives only here, linked by the generated id.
type HiddenFact struct {
	ID         string
	Element    string
	ContextRef string
	URI        string
	Label      string
}

// Tagger renders fact values against field definitions. It is bound to
// one id sequence and accumulates hidden facts for the document assembler;
// create a fresh Tagger per generation call.
type Tagger struct {
	seq    *facts.Sequence
	hidden []HiddenFact
}

// NewTagger returns a tagger drawing ids from seq.
func NewTagger(seq *facts.Sequence) *Tagger {
	return &Tagger{seq: seq}
}

// HiddenFacts returns the accumulated hidden-fact entries in
// registration order.
func (t *Tagger) HiddenFacts() []HiddenFact {
	return t.hidden
}

// Tag renders one fact value as an Inline XBRL fragment. Numeric markup
// is emitted only when the field is numeric-typed AND the value survives
// numeric normalization; everything else, including numeric-typed fields
// holding narrative like "Not applicable", falls back to a non-numeric
// fragment (R1.3).
func (t *Tagger) Tag(fv types.FactValue, def types.FieldDefinition) string {
	if def.DataType.IsNumeric() && facts.IsValueNumeric(fv.Value) {
		return t.numericFragment(fv, def)
	}
	if fv.HiddenURI != "" {
		return t.hiddenFragment(fv, def)
	}
	if def.IsTextBlock {
		return t.textBlockFragment(fv, def)
	}
	return fmt.Sprintf(`<ix:nonNumeric id="%s" name="%s" contextRef="%s" escape="false">%s</ix:nonNumeric>`,
		t.seq.NextFactID(), def.Element, fv.ContextRef, EscapeXML(fv.Value))
}

func (t *Tagger) numericFragment(fv types.FactValue, def types.FieldDefinition) string {
	norm, _ := facts.NormalizeNumeric(fv.Value)
	display := fv.Value
	sign := ""
	if strings.HasPrefix(norm, "-") {
		sign = ` sign="-"`
		display = strings.TrimPrefix(strings.TrimSpace(display), "-")
	}
	return fmt.Sprintf(`<ix:nonFraction id="%s" name="%s" contextRef="%s" unitRef="%s" decimals="%s" format="ixt:num-dot-decimal"%s>%s</ix:nonFraction>`,
		t.seq.NextFactID(), def.Element, fv.ContextRef, fv.UnitRef, fv.Decimals, sign, EscapeXML(display))
}

// hiddenFragment registers the machine value in the hidden block and
// returns a visible span linked to it. The raw taxonomy URI never appears
// in visible content (R3.2).
func (t *Tagger) hiddenFragment(fv types.FactValue, def types.FieldDefinition) string {
	id := t.seq.NextHiddenID()
	label := fv.DisplayLabel
	if label == "" {
		label = fv.Value
	}
	t.hidden = append(t.hidden, HiddenFact{
		ID:         id,
		Element:    def.Element,
		ContextRef: fv.ContextRef,
		URI:        fv.HiddenURI,
		Label:      label,
	})
	return fmt.Sprintf(`<span style="-mica-ix-hidden:%s">%s</span>`, id, EscapeXML(label))
}

// textBlockFragment emits a block-text fact, splitting it into a
// continuation chain when it exceeds the fragment budget (R2.1-R2.4).
func (t *Tagger) textBlockFragment(fv types.FactValue, def types.FieldDefinition) string {
	frags := SplitText(fv.Value, FragmentBudget)

	if len(frags) == 1 {
		return fmt.Sprintf(`<ix:nonNumeric id="%s" name="%s" contextRef="%s" escape="true" format="ixt:text-block">%s</ix:nonNumeric>`,
			t.seq.NextFactID(), def.Element, fv.ContextRef, EscapeXML(frags[0]))
	}

	ids := make([]string, len(frags)-1)
	for i := range ids {
		ids[i] = t.seq.NextContinuationID()
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<ix:nonNumeric id="%s" name="%s" contextRef="%s" continuedAt="%s" escape="true" format="ixt:text-block">%s</ix:nonNumeric>`,
		t.seq.NextFactID(), def.Element, fv.ContextRef, ids[0], EscapeXML(frags[0]))
	for i := 1; i < len(frags); i++ {
		b.WriteString("\n")
		if i < len(frags)-1 {
			fmt.Fprintf(&b, `<ix:continuation id="%s" continuedAt="%s">%s</ix:continuation>`,
				ids[i-1], ids[i], EscapeXML(frags[i]))
		} else {
			// Last fragment carries no forward link: chains terminate.
			fmt.Fprintf(&b, `<ix:continuation id="%s">%s</ix:continuation>`,
				ids[i-1], EscapeXML(frags[i]))
		}
	}
	return b.String()
}

// Exclude wraps structural (non-data) markup so viewers do not read it as
// fact content. Applied to ordinal and label cells in rows that hold a
// tagged fact (R4.1).
func Exclude(markup string) string {
	return "<ix:exclude>" + markup + "</ix:exclude>"
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeXML escapes fact content for embedding in document markup.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
