package dri

import "testing"

func TestRegistryHasTwentyCanonicalKeys(t *testing.T) {
	if len(Registry) != 20 {
		t.Fatalf("expected 20 canonical micronutrient keys, got %d", len(Registry))
	}
	for key, info := range Registry {
		if info.Name == "" || info.Unit == "" {
			t.Errorf("key %q missing display metadata: %+v", key, info)
		}
		if info.USDAID <= 0 {
			t.Errorf("key %q has no USDA nutrient ID", key)
		}
	}
}

func TestTargetsForCoversAllEightDemographics(t *testing.T) {
	sexes := []Sex{Male, Female}
	ages := []AgeGroup{Age19To30, Age31To50, Age51To70, Age71Plus}
	for _, sex := range sexes {
		for _, age := range ages {
			targets := TargetsFor(sex, age)
			if len(targets) != len(male1930) {
				t.Errorf("TargetsFor(%s, %s) returned %d keys, want %d", sex, age, len(targets), len(male1930))
			}
		}
	}
}

func TestTargetsForAppliesAgeOverrides(t *testing.T) {
	base := TargetsFor(Male, Age19To30)
	older := TargetsFor(Male, Age31To50)
	if base["magnesium_mg"] == older["magnesium_mg"] {
		t.Fatalf("expected male 31-50 magnesium override to differ from 19-30 baseline")
	}
	if older["magnesium_mg"] != 420 {
		t.Errorf("male 31-50 magnesium_mg = %v, want 420", older["magnesium_mg"])
	}
	// Unrelated keys inherit unchanged from the base bracket.
	if older["calcium_mg"] != base["calcium_mg"] {
		t.Errorf("male 31-50 calcium_mg should inherit from 19-30, got %v vs %v", older["calcium_mg"], base["calcium_mg"])
	}
}

func TestTargetsForOlderFemaleBracketOverridesIron(t *testing.T) {
	// Female iron drops sharply after menopause (51-70 bracket); this is
	// the one override that moves macronutrient-scale, not just a minor
	// adjustment, so it is worth pinning down explicitly.
	younger := TargetsFor(Female, Age31To50)
	older := TargetsFor(Female, Age51To70)
	if younger["iron_mg"] != 18 {
		t.Errorf("female 31-50 iron_mg = %v, want 18", younger["iron_mg"])
	}
	if older["iron_mg"] != 8 {
		t.Errorf("female 51-70 iron_mg = %v, want 8", older["iron_mg"])
	}
}

func TestTargetsForReturnsDefensiveCopy(t *testing.T) {
	got := TargetsFor(Male, Age19To30)
	got["calcium_mg"] = -1
	again := TargetsFor(Male, Age19To30)
	if again["calcium_mg"] == -1 {
		t.Fatalf("TargetsFor must return a copy; mutation leaked into the shared table")
	}
}

func TestULsForOmitsNutrientsWithNoEstablishedUL(t *testing.T) {
	uls := ULsFor(Male, Age19To30)
	noUL := []string{"potassium_mg", "thiamin_mg", "riboflavin_mg", "vitamin_b12_mcg", "vitamin_k_mcg"}
	for _, key := range noUL {
		if _, present := uls[key]; present {
			t.Errorf("expected %q to be absent from the UL table, got %v", key, uls[key])
		}
	}
}

func TestULsForAppliesOlderAdultOverrides(t *testing.T) {
	younger := ULsFor(Male, Age51To70)
	if younger["calcium_mg"] != 2000 {
		t.Errorf("male 51-70 calcium UL = %v, want 2000", younger["calcium_mg"])
	}
	adult := ULsFor(Male, Age19To30)
	if adult["calcium_mg"] != 2500 {
		t.Errorf("male 19-30 calcium UL = %v, want 2500", adult["calcium_mg"])
	}
}

func TestTargetsForUnknownDemographicReturnsEmptyMap(t *testing.T) {
	got := TargetsFor("nonbinary", "0-1")
	if len(got) != 0 {
		t.Fatalf("expected an empty map for an unknown demographic, got %v", got)
	}
}
