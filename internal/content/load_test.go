package content

import "testing"

func TestLoadEmbeddedPacks(t *testing.T) {
	repo, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if n := len(repo.ListAssessments()); n == 0 {
		t.Error("no assessments loaded")
	}
	if n := len(repo.ListCaseScenarios()); n == 0 {
		t.Error("no case scenarios loaded")
	}
	if n := len(repo.ListConditions()); n == 0 {
		t.Error("no conditions loaded")
	}
	if n := len(repo.ListRedFlags()); n == 0 {
		t.Error("no red flag cards loaded")
	}
	if n := len(repo.ListGlossary()); n == 0 {
		t.Error("no glossary entries loaded")
	}
}

func TestRepositoryLookups(t *testing.T) {
	repo, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, a := range repo.ListAssessments() {
		got, ok := repo.Assessment(a.ID)
		if !ok || got.ID != a.ID {
			t.Errorf("Assessment(%q) lookup failed", a.ID)
		}
	}

	for _, c := range repo.ListCaseScenarios() {
		got, ok := repo.CaseScenario(c.ID)
		if !ok || got.ID != c.ID {
			t.Errorf("CaseScenario(%q) lookup failed", c.ID)
		}
		if c.ConditionID != "" {
			if _, ok := repo.Condition(c.ConditionID); !ok {
				t.Errorf("case %q references unknown condition %q", c.ID, c.ConditionID)
			}
		}
	}

	if _, ok := repo.Assessment("no-such-id"); ok {
		t.Error("lookup of unknown assessment id should fail")
	}
}

func TestCasesGroupedByCondition(t *testing.T) {
	repo, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, cond := range repo.ListConditions() {
		for _, c := range repo.CasesByCondition(cond.ID) {
			if c.ConditionID != cond.ID {
				t.Errorf("case %q grouped under wrong condition", c.ID)
			}
		}
	}
}
