// Copyright Loideroi Labs, 2026. All rights reserved.

package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/inline"
	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/taxonomy"
	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// namespaceDecls binds the fixed namespace prefixes of every generated
// document. Prefixes are constants of the format, never derived from input.
var namespaceDecls = strings.Join([]string{
	` xmlns="http://www.w3.org/1999/xhtml"`,
	` xmlns:ix="http://www.xbrl.org/2013/inlineXBRL"`,
	` xmlns:ixt="http://www.xbrl.org/inlineXBRL/transformation/2020-02-12"`,
	` xmlns:xbrli="http://www.xbrl.org/2003/instance"`,
	` xmlns:xbrldi="http://xbrl.org/2006/xbrldi"`,
	` xmlns:iso4217="http://www.xbrl.org/2003/iso4217"`,
	` xmlns:utr="http://www.xbrl.org/2009/utr"`,
	` xmlns:link="http://www.xbrl.org/2003/linkbase"`,
	` xmlns:xlink="http://www.w3.org/1999/xlink"`,
	` xmlns:mica="` + taxonomy.Namespace + `"`,
}, "")

const dateLayout = "2006-01-02"

// renderHeader emits the ix:header with the accumulated hidden facts, the
// schema reference, and the resource block. Only contexts referenced by
// at least one rendered fact and units referenced by at least one numeric
// fact appear (R3.1-R3.3).
func (a *assembler) renderHeader(schemaRef string) string {
	var b strings.Builder
	b.WriteString("<ix:header>\n")

	hidden := a.tagger.HiddenFacts()
	if len(hidden) > 0 {
		b.WriteString("<ix:hidden>\n")
		for _, h := range hidden {
			a.usedCtxs[h.ContextRef] = true
			fmt.Fprintf(&b, `<ix:nonNumeric id="%s" name="%s" contextRef="%s" escape="false">%s</ix:nonNumeric>`+"\n",
				h.ID, h.Element, h.ContextRef, inline.EscapeXML(h.URI))
		}
		b.WriteString("</ix:hidden>\n")
	}

	fmt.Fprintf(&b, `<ix:references><link:schemaRef xlink:type="simple" xlink:href="%s" /></ix:references>`+"\n", schemaRef)

	b.WriteString("<ix:resources>\n")
	for _, c := range a.model.Contexts {
		if !a.usedCtxs[c.ID] {
			continue
		}
		b.WriteString(contextXML(c))
	}
	for _, u := range a.model.Units {
		fmt.Fprintf(&b, `<xbrli:unit id="%s"><xbrli:measure>%s</xbrli:measure></xbrli:unit>`+"\n", u.ID, u.Measure)
	}
	b.WriteString("</ix:resources>\n")

	b.WriteString("</ix:header>\n")
	return b.String()
}

func contextXML(c types.Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<xbrli:context id="%s">`+"\n", c.ID)

	b.WriteString("<xbrli:entity>")
	fmt.Fprintf(&b, `<xbrli:identifier scheme="%s">%s</xbrli:identifier>`, c.Scheme, inline.EscapeXML(c.EntityID))
	if c.Dimension != nil {
		fmt.Fprintf(&b, `<xbrli:segment><xbrldi:typedMember dimension="%s"><%s>%s</%s></xbrldi:typedMember></xbrli:segment>`,
			c.Dimension.Axis, c.Dimension.Member, inline.EscapeXML(c.Dimension.Value), c.Dimension.Member)
	}
	b.WriteString("</xbrli:entity>\n")

	b.WriteString("<xbrli:period>")
	if c.IsInstant() {
		fmt.Fprintf(&b, "<xbrli:instant>%s</xbrli:instant>", formatDate(c.Instant))
	} else {
		fmt.Fprintf(&b, "<xbrli:startDate>%s</xbrli:startDate><xbrli:endDate>%s</xbrli:endDate>",
			formatDate(c.StartDate), formatDate(c.EndDate))
	}
	b.WriteString("</xbrli:period>\n")

	b.WriteString("</xbrli:context>\n")
	return b.String()
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
