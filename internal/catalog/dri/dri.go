// Package dri holds the read-only canonical-micronutrient registry and
// the DRI/EAR/UL tables consumed by callers to build solver.Request
// values (spec.md §6). None of this is read by the solver core
// itself — it is process-scoped data that sits alongside it.
package dri

// Sex is one of the two demographic axes the DRI tables are keyed by.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// AgeGroup is the other demographic axis.
type AgeGroup string

const (
	Age19To30 AgeGroup = "19-30"
	Age31To50 AgeGroup = "31-50"
	Age51To70 AgeGroup = "51-70"
	Age71Plus AgeGroup = "71+"
)

// Tier indicates relative importance for display/prioritization; it is
// not consulted by the solver core, which treats every micro key
// uniformly.
type Tier int

const (
	TierEssentialMineral Tier = 1
	TierVitaminCAndB     Tier = 2
	TierFatSolubleAndK   Tier = 3
)

// MicroInfo is the display/lookup metadata for one canonical key.
type MicroInfo struct {
	Name   string
	Unit   string
	USDAID int
	Tier   Tier
}

// Registry is the closed, stable set of 20 canonical micronutrient
// keys. The solver core treats these as opaque strings; this registry
// is what a caller uses to resolve a key to a display name, unit, and
// USDA source identifier (spec.md §6).
var Registry = map[string]MicroInfo{
	"calcium_mg":      {Name: "Calcium", Unit: "mg", USDAID: 1087, Tier: TierEssentialMineral},
	"iron_mg":         {Name: "Iron", Unit: "mg", USDAID: 1089, Tier: TierEssentialMineral},
	"magnesium_mg":    {Name: "Magnesium", Unit: "mg", USDAID: 1090, Tier: TierEssentialMineral},
	"phosphorus_mg":   {Name: "Phosphorus", Unit: "mg", USDAID: 1091, Tier: TierEssentialMineral},
	"potassium_mg":    {Name: "Potassium", Unit: "mg", USDAID: 1092, Tier: TierEssentialMineral},
	"zinc_mg":         {Name: "Zinc", Unit: "mg", USDAID: 1095, Tier: TierEssentialMineral},
	"copper_mg":       {Name: "Copper", Unit: "mg", USDAID: 1098, Tier: TierEssentialMineral},
	"manganese_mg":    {Name: "Manganese", Unit: "mg", USDAID: 1101, Tier: TierEssentialMineral},
	"selenium_mcg":    {Name: "Selenium", Unit: "mcg", USDAID: 1103, Tier: TierEssentialMineral},
	"vitamin_c_mg":    {Name: "Vitamin C", Unit: "mg", USDAID: 1162, Tier: TierVitaminCAndB},
	"thiamin_mg":      {Name: "Thiamin", Unit: "mg", USDAID: 1165, Tier: TierVitaminCAndB},
	"riboflavin_mg":   {Name: "Riboflavin", Unit: "mg", USDAID: 1166, Tier: TierVitaminCAndB},
	"niacin_mg":       {Name: "Niacin", Unit: "mg", USDAID: 1167, Tier: TierVitaminCAndB},
	"vitamin_b6_mg":   {Name: "Vitamin B6", Unit: "mg", USDAID: 1175, Tier: TierVitaminCAndB},
	"folate_mcg":      {Name: "Folate", Unit: "mcg", USDAID: 1177, Tier: TierVitaminCAndB},
	"vitamin_b12_mcg": {Name: "Vitamin B12", Unit: "mcg", USDAID: 1178, Tier: TierVitaminCAndB},
	"vitamin_a_mcg":   {Name: "Vitamin A", Unit: "mcg", USDAID: 1106, Tier: TierFatSolubleAndK},
	"vitamin_d_mcg":   {Name: "Vitamin D", Unit: "mcg", USDAID: 1114, Tier: TierFatSolubleAndK},
	"vitamin_e_mg":    {Name: "Vitamin E", Unit: "mg", USDAID: 1109, Tier: TierFatSolubleAndK},
	"vitamin_k_mcg":   {Name: "Vitamin K", Unit: "mcg", USDAID: 1185, Tier: TierFatSolubleAndK},
}

type demographic struct {
	sex Sex
	age AgeGroup
}

var male1930 = map[string]float64{
	"calcium_mg": 1000, "iron_mg": 8, "magnesium_mg": 400, "phosphorus_mg": 700,
	"potassium_mg": 3400, "zinc_mg": 11, "copper_mg": 0.9, "manganese_mg": 2.3,
	"selenium_mcg": 55, "vitamin_c_mg": 90, "thiamin_mg": 1.2, "riboflavin_mg": 1.3,
	"niacin_mg": 16, "vitamin_b6_mg": 1.3, "folate_mcg": 400, "vitamin_b12_mcg": 2.4,
	"vitamin_a_mcg": 900, "vitamin_d_mcg": 15, "vitamin_e_mg": 15, "vitamin_k_mcg": 120,
}

var female1930 = map[string]float64{
	"calcium_mg": 1000, "iron_mg": 18, "magnesium_mg": 310, "phosphorus_mg": 700,
	"potassium_mg": 2600, "zinc_mg": 8, "copper_mg": 0.9, "manganese_mg": 1.8,
	"selenium_mcg": 55, "vitamin_c_mg": 75, "thiamin_mg": 1.1, "riboflavin_mg": 1.1,
	"niacin_mg": 14, "vitamin_b6_mg": 1.3, "folate_mcg": 400, "vitamin_b12_mcg": 2.4,
	"vitamin_a_mcg": 700, "vitamin_d_mcg": 15, "vitamin_e_mg": 15, "vitamin_k_mcg": 90,
}

func derive(base map[string]float64, overrides map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

var male3150 = derive(male1930, map[string]float64{"magnesium_mg": 420})
var male5170 = derive(male3150, map[string]float64{"vitamin_b6_mg": 1.7})
var male71Plus = derive(male5170, map[string]float64{"calcium_mg": 1200, "vitamin_d_mcg": 20})

var female3150 = derive(female1930, map[string]float64{"magnesium_mg": 320})
var female5170 = derive(female3150, map[string]float64{"iron_mg": 8, "vitamin_b6_mg": 1.5})
var female71Plus = derive(female5170, map[string]float64{"calcium_mg": 1200, "vitamin_d_mcg": 20})

// Targets maps (sex, age_group) to a canonical-key -> DRI amount
// table, in each nutrient's canonical unit.
var Targets = map[demographic]map[string]float64{
	{Male, Age19To30}: male1930,
	{Male, Age31To50}: male3150,
	{Male, Age51To70}: male5170,
	{Male, Age71Plus}: male71Plus,

	{Female, Age19To30}: female1930,
	{Female, Age31To50}: female3150,
	{Female, Age51To70}: female5170,
	{Female, Age71Plus}: female71Plus,
}

// adultUL holds adult Tolerable Upper Intake Levels for ages 19-70;
// nutrients with no NIH-established UL (potassium, thiamin,
// riboflavin, vitamin B12, vitamin K — intake from food carries no
// known toxicity risk) are absent, matching spec.md §7's "a target <=
// 0 is dropped silently" / omitted-key convention for MicroULs.
//
// original_source/ has no UL table of any kind (the Python reference
// solver never enforced one) — this table is a fresh spec.md-only
// addition, not ported from anywhere.
var adultUL = map[string]float64{
	"calcium_mg": 2500, "iron_mg": 45, "magnesium_mg": 350, "phosphorus_mg": 4000,
	"zinc_mg": 40, "copper_mg": 10, "manganese_mg": 11, "selenium_mcg": 400,
	"vitamin_c_mg": 2000, "niacin_mg": 35, "vitamin_b6_mg": 100, "folate_mcg": 1000,
	"vitamin_a_mcg": 3000, "vitamin_d_mcg": 100, "vitamin_e_mg": 1000,
}

var olderAdultUL = derive(adultUL, map[string]float64{
	"calcium_mg": 2000, "phosphorus_mg": 3000,
})

// ULs maps (sex, age_group) to a canonical-key -> UL amount table. ULs
// are flat across sex for every nutrient in this registry; they are
// kept demographic-keyed anyway to match Targets's shape so callers
// can look both up the same way.
var ULs = map[demographic]map[string]float64{
	{Male, Age19To30}: adultUL,
	{Male, Age31To50}: adultUL,
	{Male, Age51To70}: olderAdultUL,
	{Male, Age71Plus}: olderAdultUL,

	{Female, Age19To30}: adultUL,
	{Female, Age31To50}: adultUL,
	{Female, Age51To70}: olderAdultUL,
	{Female, Age71Plus}: olderAdultUL,
}

// TargetsFor and ULsFor return a defensive copy of the table for the
// given demographic so callers can freely subtract pinned intake
// without mutating the shared process-scoped data (spec.md §3
// "Lifecycles").
func TargetsFor(sex Sex, age AgeGroup) map[string]float64 {
	return copyMap(Targets[demographic{sex, age}])
}

func ULsFor(sex Sex, age AgeGroup) map[string]float64 {
	return copyMap(ULs[demographic{sex, age}])
}

func copyMap(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
