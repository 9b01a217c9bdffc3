package mapper

import "strings"

// Translation tables between the backend's free-form vocabulary and the
// local constrained enums. Matching is case-insensitive; an unmapped value
// passes through verbatim so data is never dropped on an unknown term.

var roleTable = map[string]string{
	"student":      "student_undergrad",
	"faculty":      "faculty",
	"professor":    "faculty",
	"entrepreneur": "external",
	"founder":      "external",
}

var schoolTable = map[string]string{
	"art":         "art",
	"engineering": "seas",
	"seas":        "seas",
	"medicine":    "med",
	"med":         "med",
	"business":    "som",
	"som":         "som",
	"law":         "law",
	"sciences":    "gsas",
	"gsas":        "gsas",
	"nursing":     "nursing",
	"music":       "music",
	"drama":       "drama",
}

var ventureStageTable = map[string]string{
	"idea":      "idea",
	"prototype": "prototype",
	"mvp":       "pilot",
	"pilot":     "pilot",
	"early":     "scaling",
	"seed":      "scaling",
	"series a":  "established",
	"growth":    "established",
}

func translate(table map[string]string, value string) string {
	if mapped, ok := table[strings.ToLower(value)]; ok {
		return mapped
	}
	return value
}

// MapRole translates a backend role term to the local role enum.
func MapRole(role string) string {
	return translate(roleTable, role)
}

// MapSchoolAffiliation translates a backend school term to the local
// short code.
func MapSchoolAffiliation(school string) string {
	return translate(schoolTable, school)
}

// MapVentureStage translates a backend stage term to the local stage enum.
func MapVentureStage(stage string) string {
	return translate(ventureStageTable, stage)
}

// MapRolePtr and friends apply the translation through optional fields,
// preserving nil.

func MapRolePtr(role *string) *string {
	if role == nil {
		return nil
	}
	mapped := MapRole(*role)
	return &mapped
}

func MapSchoolAffiliationPtr(school *string) *string {
	if school == nil {
		return nil
	}
	mapped := MapSchoolAffiliation(*school)
	return &mapped
}

func MapVentureStagePtr(stage *string) *string {
	if stage == nil {
		return nil
	}
	mapped := MapVentureStage(*stage)
	return &mapped
}
