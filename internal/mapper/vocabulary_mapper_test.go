package mapper

import "testing"

func TestMapRole(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"student", "student_undergrad"},
		{"Student", "student_undergrad"},
		{"faculty", "faculty"},
		{"professor", "faculty"},
		{"entrepreneur", "external"},
		{"Founder", "external"},
		{"unknown-value", "unknown-value"}, // pass-through
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := MapRole(tt.in); got != tt.want {
				t.Errorf("MapRole(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapSchoolAffiliation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"engineering", "seas"},
		{"Medicine", "med"},
		{"business", "som"},
		{"sciences", "gsas"},
		{"seas", "seas"}, // canonical codes pass through
		{"law", "law"},
		{"nursing", "nursing"},
		{"divinity", "divinity"}, // unmapped preserved
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := MapSchoolAffiliation(tt.in); got != tt.want {
				t.Errorf("MapSchoolAffiliation(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapVentureStage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"idea", "idea"},
		{"prototype", "prototype"},
		{"mvp", "pilot"},
		{"pilot", "pilot"},
		{"early", "scaling"},
		{"seed", "scaling"},
		{"Series A", "established"},
		{"growth", "established"},
		{"ipo", "ipo"}, // unmapped preserved
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := MapVentureStage(tt.in); got != tt.want {
				t.Errorf("MapVentureStage(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPtrMappersPreserveNil(t *testing.T) {
	if MapRolePtr(nil) != nil {
		t.Error("MapRolePtr(nil) should be nil")
	}

	founder := "founder"
	got := MapRolePtr(&founder)
	if got == nil || *got != "external" {
		t.Errorf("MapRolePtr(founder) = %v", got)
	}
}
