package util

import "testing"

func TestCleanText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "nbsp", input: "\u00a0 123 MAIN\u00a0 ST \n", want: "123 MAIN ST"},
		{name: "zero width", input: "LEE\u200b COUNTY", want: "LEE COUNTY"},
		{name: "empty", input: " \t\n", want: ""},
		{name: "smart quotes", input: "O\u2019BRIEN", want: "O'BRIEN"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanText(tc.input); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}

	if CleanPtr("   ") != nil {
		t.Fatalf("blank input should be absent")
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"SMITH":         "Smith",
		"mary-jane":     "Mary-Jane",
		"O'BRIEN":       "O'Brien",
		"ST. JOHN":      "St. John",
		"  jean  paul ": "Jean Paul",
	}
	for input, want := range cases {
		if got := TitleCase(input); got != want {
			t.Fatalf("TitleCase(%q) = %q want %q", input, got, want)
		}
	}
}

func TestFoldAccentsAndKey(t *testing.T) {
	if got := FoldAccents("Peña José"); got != "Pena Jose" {
		t.Fatalf("fold: %q", got)
	}
	if NormalizeKey("12-34-56.000") != NormalizeKey("123456000") {
		t.Fatalf("keys should match")
	}
	if got := NormalizeKey(" 01-4n-23-00 "); got != "014N2300" {
		t.Fatalf("key: %q", got)
	}
}

func TestNormalizeHeader(t *testing.T) {
	if got := NormalizeHeader("  Sale Price:  "); got != "sale price" {
		t.Fatalf("got %q", got)
	}
}
