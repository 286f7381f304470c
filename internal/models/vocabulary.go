package models

import "strings"

// Categories is the fixed, ordered list of listing categories
var Categories = []string{"Action Figures", "Board Games", "LEGO Sets", "Plush Toys"}

// ConditionGrades lists every grade from best to worst
var ConditionGrades = []ConditionGrade{ConditionMint, ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor}

// ConditionLabels maps a grade letter to its human label
var ConditionLabels = map[ConditionGrade]string{
	ConditionMint:      "Mint",
	ConditionExcellent: "Excellent",
	ConditionGood:      "Good",
	ConditionFair:      "Fair",
	ConditionPoor:      "Poor",
}

// IsCategory reports whether name is one of Categories
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Valid reports whether g is a known grade
func (g ConditionGrade) Valid() bool {
	_, ok := ConditionLabels[g]
	return ok
}

// Label returns the human label, or "" for an unknown grade
func (g ConditionGrade) Label() string {
	return ConditionLabels[g]
}

// Stars is the kids-mode star rating: A=5 down to F=1, 0 when unknown
func (g ConditionGrade) Stars() int {
	for i, grade := range ConditionGrades {
		if grade == g {
			return len(ConditionGrades) - i
		}
	}
	return 0
}

// Abbrev is the compact professional badge, e.g. "A/MIN"
func (g ConditionGrade) Abbrev() string {
	label := g.Label()
	if len(label) < 3 {
		return string(g)
	}
	return string(g) + "/" + strings.ToUpper(label[:3])
}
