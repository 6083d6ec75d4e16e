package keyword

import "testing"

func TestExtractNormalizesAndFilters(t *testing.T) {
	got := Extract("Administer the Lidocaine 1% at 3 mg/kg, not more.")

	for _, want := range []string{"administer", "lidocaine", "mg", "kg"} {
		if _, ok := got[want]; !ok {
			t.Errorf("missing keyword %q in %v", want, got)
		}
	}
	for _, absent := range []string{"the", "at", "not", "The", "1"} {
		if _, ok := got[absent]; ok {
			t.Errorf("unexpected keyword %q in %v", absent, got)
		}
	}
}

func TestExtractRussianStopwords(t *testing.T) {
	got := Extract("Ввести лидокаин при боли и для анестезии")

	if _, ok := got["лидокаин"]; !ok {
		t.Errorf("missing keyword лидокаин in %v", got)
	}
	for _, stop := range []string{"при", "и", "для"} {
		if _, ok := got[stop]; ok {
			t.Errorf("stopword %q leaked into %v", stop, got)
		}
	}
}

func TestExtractEmpty(t *testing.T) {
	if got := Extract(""); len(got) != 0 {
		t.Errorf("expected empty set, got %v", got)
	}
	if got := Extract("a и в I"); len(got) != 0 {
		t.Errorf("stopwords and short tokens should vanish, got %v", got)
	}
}

func TestOverlap(t *testing.T) {
	a := Extract("lidocaine dose mg kg")
	b := Extract("maximum lidocaine dose is given in mg")

	if got := Overlap(a, b); got != 3 {
		t.Errorf("overlap = %d, want 3 (lidocaine, dose, mg)", got)
	}
	if got := Overlap(a, nil); got != 0 {
		t.Errorf("overlap with nil = %d, want 0", got)
	}
	if got := Overlap(a, a); got != len(a) {
		t.Errorf("self overlap = %d, want %d", got, len(a))
	}
}

func TestIsStopword(t *testing.T) {
	cases := []struct {
		tok  string
		want bool
	}{
		{"the", true},
		{"The", true},
		{"при", true},
		{"lidocaine", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsStopword(tc.tok); got != tc.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tc.tok, got, tc.want)
		}
	}
}
