package content

// Repository serves immutable content snapshots to the rest of the app.
// Collections are small enough to keep fully in memory; lookups by id and
// the two secondary groupings are maintained as maps built once at load.
type Repository struct {
	assessments []Assessment
	cases       []CaseScenario
	conditions  []Condition
	redFlags    []RedFlagCard
	glossary    []GlossaryEntry

	assessmentByID map[string]int
	caseByID       map[string]int
	conditionByID  map[string]int

	conditionsByCategory map[Category][]int
	casesByCondition     map[string][]int
}

func newRepository(
	assessments []Assessment,
	cases []CaseScenario,
	conditions []Condition,
	redFlags []RedFlagCard,
	glossary []GlossaryEntry,
) *Repository {
	r := &Repository{
		assessments:          assessments,
		cases:                cases,
		conditions:           conditions,
		redFlags:             redFlags,
		glossary:             glossary,
		assessmentByID:       make(map[string]int, len(assessments)),
		caseByID:             make(map[string]int, len(cases)),
		conditionByID:        make(map[string]int, len(conditions)),
		conditionsByCategory: make(map[Category][]int),
		casesByCondition:     make(map[string][]int),
	}

	for i, a := range assessments {
		r.assessmentByID[a.ID] = i
	}
	for i, c := range cases {
		r.caseByID[c.ID] = i
		if c.ConditionID != "" {
			r.casesByCondition[c.ConditionID] = append(r.casesByCondition[c.ConditionID], i)
		}
	}
	for i, c := range conditions {
		r.conditionByID[c.ID] = i
		r.conditionsByCategory[c.Category] = append(r.conditionsByCategory[c.Category], i)
	}
	return r
}

// ListAssessments returns all assessments in pack order.
func (r *Repository) ListAssessments() []Assessment {
	return append([]Assessment(nil), r.assessments...)
}

// ListCaseScenarios returns all case scenarios in pack order.
func (r *Repository) ListCaseScenarios() []CaseScenario {
	return append([]CaseScenario(nil), r.cases...)
}

// ListConditions returns all conditions in pack order.
func (r *Repository) ListConditions() []Condition {
	return append([]Condition(nil), r.conditions...)
}

// ListRedFlags returns all red-flag flashcards in pack order.
func (r *Repository) ListRedFlags() []RedFlagCard {
	return append([]RedFlagCard(nil), r.redFlags...)
}

// ListGlossary returns all glossary entries in pack order.
func (r *Repository) ListGlossary() []GlossaryEntry {
	return append([]GlossaryEntry(nil), r.glossary...)
}

// Assessment looks up an assessment by id.
func (r *Repository) Assessment(id string) (Assessment, bool) {
	i, ok := r.assessmentByID[id]
	if !ok {
		return Assessment{}, false
	}
	return r.assessments[i], true
}

// CaseScenario looks up a case scenario by id.
func (r *Repository) CaseScenario(id string) (CaseScenario, bool) {
	i, ok := r.caseByID[id]
	if !ok {
		return CaseScenario{}, false
	}
	return r.cases[i], true
}

// Condition looks up a condition by id.
func (r *Repository) Condition(id string) (Condition, bool) {
	i, ok := r.conditionByID[id]
	if !ok {
		return Condition{}, false
	}
	return r.conditions[i], true
}

// ConditionsByCategory returns conditions in the given category, pack order.
func (r *Repository) ConditionsByCategory(cat Category) []Condition {
	idxs := r.conditionsByCategory[cat]
	out := make([]Condition, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, r.conditions[i])
	}
	return out
}

// CasesByCondition returns case scenarios linked to a condition, pack order.
func (r *Repository) CasesByCondition(conditionID string) []CaseScenario {
	idxs := r.casesByCondition[conditionID]
	out := make([]CaseScenario, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, r.cases[i])
	}
	return out
}
