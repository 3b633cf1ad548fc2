package slug

import "testing"

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"already slugged", "hello-world", "hello-world"},
		{"accents folded", "Café com Pão", "cafe-com-pao"},
		{"punctuation collapsed", "What?! A -- Title...", "what-a-title"},
		{"leading and trailing noise", "  ...New Title!  ", "new-title"},
		{"numbers kept", "Top 10 de 2024", "top-10-de-2024"},
		{"empty string", "", ""},
		{"whitespace only", "   \t\n", ""},
		{"symbols only", "?!...---", ""},
		{"unicode beyond latin", "日本語 post", "post"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Derive(tt.title)
			if result != tt.expected {
				t.Errorf("Derive(%q) = %q, want %q", tt.title, result, tt.expected)
			}
		})
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	inputs := []string{"", "New Title", "Café", "  spaces  ", "日本語"}
	for _, in := range inputs {
		first := Derive(in)
		for range 5 {
			if got := Derive(in); got != first {
				t.Errorf("Derive(%q) não é determinística: %q != %q", in, got, first)
			}
		}
	}
}
