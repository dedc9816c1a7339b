// Copyright Loideroi Labs, 2026. All rights reserved.

// Package facts maps a whitepaper record to the dimensional fact model:
// contexts, units and a taxonomy-element-keyed fact map.
// Implements: prd001-fact-model (R1-R6); docs/ARCHITECTURE § Fact Model.
package facts

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Loideroi/WhitePaperXBRL-sub000/internal/taxonomy"
	"github.com/Loideroi/WhitePaperXBRL-sub000/pkg/types"
)

// Well-known context ids. Dimensional member and person contexts append a
// 1-based index ("ctx_member_1").
const (
	CtxInstant  = "ctx_instant"
	CtxDuration = "ctx_duration"
	CtxIssuer   = "ctx_issuer"
	CtxOperator = "ctx_operator"

	ctxMemberPrefix = "ctx_member_"
	ctxPersonPrefix = "ctx_person_"
)

const dateLayout = "2006-01-02"

// ElementFact pairs a taxonomy element with its fact value, preserving
// rendering order inside a member block.
type ElementFact struct {
	Element string
	Value   types.FactValue
}

// MemberBlock holds the dimensionally tagged facts of one repeated
// sub-record (one management body member or one person involved).
type MemberBlock struct {
	ContextID string
	Title     string
	Facts     []ElementFact
}

// Model is the output of one build pass: everything the assembler and the
// validator need, constructed fresh per call and discarded afterward.
type Model struct {
	Contexts []types.Context
	Units    []types.Unit

	// FactMap holds the non-dimensional facts keyed by element name; at
	// most one fact value per element per pass.
	FactMap map[string]types.FactValue

	// Members holds the dimensional sub-record blocks in document order.
	Members []MemberBlock
}

// Facts flattens the model into the emitted fact set, the shape the
// duplicate detector groups over. Map-backed facts are sorted by element
// name for determinism; member facts follow in document order.
func (m *Model) Facts() []types.Fact {
	elements := make([]string, 0, len(m.FactMap))
	for e := range m.FactMap {
		elements = append(elements, e)
	}
	sort.Strings(elements)

	out := make([]types.Fact, 0, len(elements))
	for _, e := range elements {
		fv := m.FactMap[e]
		out = append(out, types.Fact{Element: e, ContextRef: fv.ContextRef, UnitRef: fv.UnitRef, Value: fv.Value})
	}
	for _, b := range m.Members {
		for _, ef := range b.Facts {
			out = append(out, types.Fact{Element: ef.Element, ContextRef: ef.Value.ContextRef, UnitRef: ef.Value.UnitRef, Value: ef.Value.Value})
		}
	}
	return out
}

// Build maps a whitepaper record to its fact model. It fails fatally,
// producing no partial output, when the primary entity identifier is
// missing: every context depends on it (R1.3).
func Build(rec *types.WhitepaperData) (*Model, error) {
	lei := strings.TrimSpace(rec.Offeror.LEI)
	if lei == "" {
		return nil, fmt.Errorf("primary entity identifier missing: cannot construct contexts")
	}

	b := &builder{
		rec: rec,
		model: &Model{
			FactMap: make(map[string]types.FactValue),
		},
		units: make(map[string]bool),
		lei:   lei,
	}

	b.buildContexts()
	b.buildTyped()
	b.buildRawFallback()
	b.buildMembers()

	return b.model, nil
}

type builder struct {
	rec   *types.WhitepaperData
	model *Model
	units map[string]bool
	lei   string

	issuerCtx   string
	operatorCtx string
}

// buildContexts creates the primary instant and duration contexts plus
// one dimensional context per distinct secondary entity (R3.1-R3.3).
func (b *builder) buildContexts() {
	doc := b.rec.DocumentDate
	yearStart := doc
	yearEnd := doc
	if !doc.IsZero() {
		yearStart = time.Date(doc.Year(), time.January, 1, 0, 0, 0, 0, doc.Location())
		yearEnd = time.Date(doc.Year(), time.December, 31, 0, 0, 0, 0, doc.Location())
	}

	b.model.Contexts = append(b.model.Contexts,
		types.Context{ID: CtxInstant, EntityID: b.lei, Scheme: types.LEIScheme, Instant: doc},
		types.Context{ID: CtxDuration, EntityID: b.lei, Scheme: types.LEIScheme, StartDate: yearStart, EndDate: yearEnd},
	)

	b.issuerCtx = b.secondaryContext(CtxIssuer, b.rec.Issuer, "issuer")
	b.operatorCtx = b.secondaryContext(CtxOperator, b.rec.Operator, "operator")
}

// secondaryContext returns the context id secondary-entity facts report
// against: a dimensional context when the entity has its own identifier,
// the primary duration context otherwise.
func (b *builder) secondaryContext(id string, e *types.Entity, role string) string {
	if e == nil {
		return CtxDuration
	}
	lei := strings.TrimSpace(e.LEI)
	if lei == "" || lei == b.lei {
		return CtxDuration
	}
	ctx := types.Context{
		ID:       id,
		EntityID: lei,
		Scheme:   types.LEIScheme,
		Dimension: &types.Dimension{
			Axis:   "mica:EntityRoleAxis",
			Member: "mica:EntityRoleValue",
			Value:  role,
		},
	}
	// Same calendar-year duration as the primary context.
	dur := b.model.Contexts[1]
	ctx.StartDate, ctx.EndDate = dur.StartDate, dur.EndDate
	b.model.Contexts = append(b.model.Contexts, ctx)
	return id
}

// buildTyped is phase one: typed record fields only. Typed mappings
// always take precedence and are never overwritten by the raw-field
// fallback (R4.1).
func (b *builder) buildTyped() {
	rec := b.rec

	b.set("A.1", rec.Offeror.Name, "")
	b.set("A.2", rec.Offeror.LegalForm, "")
	b.set("A.3", rec.Offeror.Address, "")
	b.set("A.4", rec.Offeror.Country, "")
	b.set("A.5", rec.Offeror.LEI, "")
	b.set("A.6", rec.Website, "")
	b.set("A.7", rec.ContactEmail, "")
	if !rec.DocumentDate.IsZero() {
		b.set("A.9", rec.DocumentDate.Format(dateLayout), "")
	}
	b.set("A.10", rec.Language, "")

	if rec.Issuer != nil {
		b.set("B.1", rec.Issuer.Name, b.issuerCtx)
		b.set("B.2", rec.Issuer.LEI, b.issuerCtx)
		b.set("B.3", rec.Issuer.Country, b.issuerCtx)
	}
	if rec.Operator != nil {
		b.set("C.1", rec.Operator.Name, b.operatorCtx)
		b.set("C.2", rec.Operator.LEI, b.operatorCtx)
		b.set("C.3", rec.Operator.Country, b.operatorCtx)
	}

	b.set("D.1", rec.ProjectName, "")
	b.set("D.2", rec.ProjectDescription, "")

	if !rec.Offering.StartDate.IsZero() {
		b.set("E.2", rec.Offering.StartDate.Format(dateLayout), "")
	}
	if !rec.Offering.EndDate.IsZero() {
		b.set("E.3", rec.Offering.EndDate.Format(dateLayout), "")
	}
	b.set("E.4", rec.Offering.TotalSupply, "")
	b.set("E.5", rec.Offering.Price, "")
	b.set("E.6", rec.Offering.Currency, "")
	b.set("E.7", rec.Offering.MinSubscription, "")
	b.set("E.8", rec.Offering.MaxSubscription, "")

	b.set("F.1", rec.Offering.TokenName, "")
	b.set("F.2", rec.Offering.TokenSymbol, "")
	b.set("F.3", string(rec.OfferingType), "")
	b.set("F.4", rec.AssetDescription, "")

	b.set("G.1", rec.RightsAndObligations, "")

	b.set("H.1", rec.Technology.Description, "")
	b.set("H.2", rec.Technology.DLTType, "")
	b.set("H.3", rec.Technology.ConsensusMechanism, "")

	b.set("I.1", rec.Risks.OfferRisks, "")
	b.set("I.2", rec.Risks.AssetRisks, "")
	b.set("I.3", rec.Risks.TechnologyRisks, "")
	b.set("I.4", rec.Risks.ProjectRisks, "")

	b.set("J.1", rec.Sustainability.EnergyConsumption, "")
	b.set("J.2", rec.Sustainability.RenewableShare, "")
	b.set("J.3", rec.Sustainability.Methodology, "")
}

// buildRawFallback is phase two: for every declared field not yet set by
// a typed mapping, consult the raw-field bag under the field number or,
// for lettered sub-fields, the parent number. Already-set elements are
// skipped, so typed mappings can never be overwritten (R4.2).
func (b *builder) buildRawFallback() {
	for _, def := range taxonomy.Fields {
		if def.IsDimensional {
			continue
		}
		if _, ok := b.model.FactMap[def.Element]; ok {
			continue
		}
		raw, ok := b.rec.RawFields[def.Number]
		if !ok {
			if parent := taxonomy.ParentNumber(def.Number); parent != "" {
				raw, ok = b.rec.RawFields[parent]
			}
		}
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		// Raw content is free text: numeric fields get token isolation,
		// which may legitimately come up empty (R4.4).
		b.model.FactMap[def.Element] = b.factValue(def, raw, b.defaultContext(def), true)
	}
}

// buildMembers creates one dimensional context and one fact block per
// repeated sub-record, each carrying a stable per-index member value (R3.4).
func (b *builder) buildMembers() {
	dur := b.model.Contexts[1]

	for i, p := range b.rec.ManagementBody {
		id := ctxMemberPrefix + strconv.Itoa(i+1)
		b.model.Contexts = append(b.model.Contexts, types.Context{
			ID: id, EntityID: b.lei, Scheme: types.LEIScheme,
			StartDate: dur.StartDate, EndDate: dur.EndDate,
			Dimension: &types.Dimension{
				Axis:   "mica:ManagementBodyMemberAxis",
				Member: "mica:ManagementBodyMemberValue",
				Value:  strconv.Itoa(i + 1),
			},
		})
		b.model.Members = append(b.model.Members, b.memberBlock(id,
			fmt.Sprintf("Management body member %d", i+1),
			[]string{"A.8.a", "A.8.b", "A.8.c"}, p))
	}

	for i, p := range b.rec.PersonsInvolved {
		id := ctxPersonPrefix + strconv.Itoa(i+1)
		b.model.Contexts = append(b.model.Contexts, types.Context{
			ID: id, EntityID: b.lei, Scheme: types.LEIScheme,
			StartDate: dur.StartDate, EndDate: dur.EndDate,
			Dimension: &types.Dimension{
				Axis:   "mica:PersonInvolvedAxis",
				Member: "mica:PersonInvolvedValue",
				Value:  strconv.Itoa(i + 1),
			},
		})
		b.model.Members = append(b.model.Members, b.memberBlock(id,
			fmt.Sprintf("Person involved %d", i+1),
			[]string{"D.3.a", "D.3.b", "D.3.c"}, p))
	}
}

func (b *builder) memberBlock(ctxID, title string, numbers []string, p types.Person) MemberBlock {
	values := []string{p.Identity, p.BusinessAddress, p.Function}
	block := MemberBlock{ContextID: ctxID, Title: title}
	for i, num := range numbers {
		def, ok := taxonomy.FieldByNumber(num)
		if !ok || values[i] == "" {
			continue
		}
		block.Facts = append(block.Facts, ElementFact{
			Element: def.Element,
			Value:   b.factValue(def, values[i], ctxID, false),
		})
	}
	return block
}

// set resolves a typed value for the field numbered num and stores it
// under the field's element. Empty values produce no fact.
func (b *builder) set(num, value, ctxOverride string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	def, ok := taxonomy.FieldByNumber(num)
	if !ok {
		return
	}
	ctx := ctxOverride
	if ctx == "" {
		ctx = b.defaultContext(def)
	}
	b.model.FactMap[def.Element] = b.factValue(def, value, ctx, false)
}

func (b *builder) defaultContext(def types.FieldDefinition) string {
	if def.PeriodType == types.PeriodInstant {
		return CtxInstant
	}
	return CtxDuration
}

// factValue runs the shared value pipeline: enumeration resolution with
// the country-code fallback, numeric isolation for raw free text, and
// unit/decimals assignment for values that will tag numerically.
func (b *builder) factValue(def types.FieldDefinition, value, ctxRef string, fromRaw bool) types.FactValue {
	value = strings.TrimSpace(value)

	if def.DataType == types.TypeEnumeration {
		return b.enumValue(def, value, ctxRef)
	}

	fv := types.FactValue{Value: value, ContextRef: ctxRef}
	if !def.DataType.IsNumeric() {
		return fv
	}

	if fromRaw {
		fv.Value = ExtractNumeric(value)
	}
	if IsValueNumeric(fv.Value) {
		fv.UnitRef = b.unitRef(def)
		fv.Decimals = decimalsFor(def.DataType)
	}
	return fv
}

// enumValue resolves an enumeration value to its taxonomy member. The
// lookup order is: value key, human-readable label, then for country
// enumerations a best-effort code extraction from the text. Unresolved
// values fall back to plain text with no taxonomy linkage.
func (b *builder) enumValue(def types.FieldDefinition, value, ctxRef string) types.FactValue {
	key := value
	entry, ok := taxonomy.Enumeration(def.Element, key)
	if !ok {
		if k, found := taxonomy.EnumerationKeyForLabel(def.Element, value); found {
			key = k
			entry, ok = taxonomy.Enumeration(def.Element, k)
		}
	}
	if !ok && taxonomy.IsCountryElement(def.Element) {
		if code := ExtractCountryCode(value); code != "" {
			key = code
			entry, ok = taxonomy.Enumeration(def.Element, code)
		}
	}
	if !ok {
		return types.FactValue{Value: value, ContextRef: ctxRef}
	}
	return types.FactValue{
		Value:        key,
		ContextRef:   ctxRef,
		HiddenURI:    entry.URI,
		DisplayLabel: entry.Label,
	}
}

// unitRef returns the unit id for a numeric field, registering the unit
// on first use so only referenced units reach the document (R5.1).
func (b *builder) unitRef(def types.FieldDefinition) string {
	var id, measure string
	switch {
	case def.DataType == types.TypeMonetary:
		cur := strings.ToUpper(strings.TrimSpace(b.rec.Offering.Currency))
		if len(cur) != 3 {
			cur = "EUR"
		}
		id, measure = "unit_"+cur, "iso4217:"+cur
	case def.Element == "mica:EnergyConsumption":
		id, measure = "unit_kWh", "utr:kWh"
	default:
		id, measure = "unit_pure", "xbrli:pure"
	}
	if !b.units[id] {
		b.units[id] = true
		b.model.Units = append(b.model.Units, types.Unit{ID: id, Measure: measure})
	}
	return id
}

func decimalsFor(dt types.DataType) string {
	switch dt {
	case types.TypeInteger:
		return "0"
	case types.TypePercent:
		return "4"
	default:
		return "2"
	}
}
