// Copyright Loideroi Labs, 2026. All rights reserved.

// Package assemble orchestrates the fact model builder and the inline
// tagging engine into one self-contained iXBRL document.
// Implements: prd003-assembly (R1-R5); docs/ARCHITECTURE § Assembly.
package assemble

import (
	"fmt"
	"strings"

	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/facts"
	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/inline"
	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/taxonomy"
	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// DefaultSchemaRef is the taxonomy schema reference embedded in the
// document header when the config does not override it.
const DefaultSchemaRef = "mica-2025-12-31.xsd"

// Generate builds the fact model for rec and renders the complete
// document. Every call creates its own id sequence, so repeated runs over
// the same record produce identical output (R5.2). The single fatal
// precondition, a missing primary entity identifier, surfaces as an error
// with no partial document.
func Generate(rec *types.WhitepaperData, cfg types.GenerationConfig) (string, error) {
	model, err := facts.Build(rec)
	if err != nil {
		return "", fmt.Errorf("building fact model: %w", err)
	}

	a := &assembler{
		rec:      rec,
		model:    model,
		tagger:   inline.NewTagger(facts.NewSequence()),
		usedCtxs: make(map[string]bool),
	}

	body := a.renderBody()

	schemaRef := cfg.SchemaRef
	if schemaRef == "" {
		schemaRef = DefaultSchemaRef
	}
	header := a.renderHeader(schemaRef)

	title := "Crypto-asset white paper"
	if rec.ProjectName != "" {
		title += " — " + inline.EscapeXML(rec.ProjectName)
	}

	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	doc.WriteString("<html" + namespaceDecls + ">\n")
	doc.WriteString("<head>\n")
	doc.WriteString(`<meta http-equiv="Content-Type" content="application/xhtml+xml; charset=UTF-8" />` + "\n")
	doc.WriteString("<title>" + title + "</title>\n")
	doc.WriteString("<style>\n" + stylesheet + "</style>\n")
	doc.WriteString("</head>\n<body>\n")
	doc.WriteString(`<div style="display:none">` + "\n" + header + "</div>\n")
	doc.WriteString("<h1>" + title + "</h1>\n")
	doc.WriteString(body)
	doc.WriteString("</body>\n</html>\n")

	return doc.String(), nil
}

type assembler struct {
	rec      *types.WhitepaperData
	model    *facts.Model
	tagger   *inline.Tagger
	usedCtxs map[string]bool
}

// renderBody walks the declared sections in canonical order. Member
// blocks follow their owning section: management body after part A,
// persons involved after part D (R2.1, R2.3).
func (a *assembler) renderBody() string {
	var b strings.Builder
	for _, section := range taxonomy.SectionOrder() {
		rows := a.renderSectionRows(section)
		blocks := a.renderMemberBlocks(section)
		if rows == "" && blocks == "" {
			continue
		}
		fmt.Fprintf(&b, "<h2>Part %s — %s</h2>\n", section, inline.EscapeXML(taxonomy.SectionTitle(section)))
		if rows != "" {
			b.WriteString("<table>\n" + rows + "</table>\n")
		}
		b.WriteString(blocks)
	}
	return b.String()
}

// renderSectionRows renders every populated non-dimensional field of one
// part as a table row. The ordinal and label cells of rows that hold a
// tagged fact are wrapped in exclusion markers so viewers never mistake
// them for fact content (R2.2).
func (a *assembler) renderSectionRows(section string) string {
	var b strings.Builder
	for _, def := range taxonomy.FieldsBySection(section) {
		if def.IsDimensional {
			continue
		}
		fv, ok := a.model.FactMap[def.Element]
		if !ok {
			continue
		}
		a.usedCtxs[fv.ContextRef] = true
		fragment := a.tagger.Tag(fv, def)
		structural := fmt.Sprintf(`<td class="num">%s</td><td class="label">%s</td>`,
			def.Number, inline.EscapeXML(def.Label))
		fmt.Fprintf(&b, `<tr>%s<td class="value">%s</td></tr>`+"\n",
			inline.Exclude(structural), fragment)
	}
	return b.String()
}

// renderMemberBlocks renders the repeated sub-records owned by a part as
// separate repeating tables, each cell tagged against its own per-index
// dimensional context.
func (a *assembler) renderMemberBlocks(section string) string {
	var prefix string
	switch section {
	case "A":
		prefix = "ctx_member_"
	case "D":
		prefix = "ctx_person_"
	default:
		return ""
	}

	var b strings.Builder
	for _, block := range a.model.Members {
		if !strings.HasPrefix(block.ContextID, prefix) {
			continue
		}
		fmt.Fprintf(&b, "<h3>%s</h3>\n<table>\n", inline.EscapeXML(block.Title))
		for _, ef := range block.Facts {
			def, ok := taxonomy.FieldByElement(ef.Element)
			if !ok {
				continue
			}
			a.usedCtxs[ef.Value.ContextRef] = true
			fragment := a.tagger.Tag(ef.Value, def)
			structural := fmt.Sprintf(`<td class="num">%s</td><td class="label">%s</td>`,
				def.Number, inline.EscapeXML(def.Label))
			fmt.Fprintf(&b, `<tr>%s<td class="value">%s</td></tr>`+"\n",
				inline.Exclude(structural), fragment)
		}
		b.WriteString("</table>\n")
	}
	return b.String()
}
