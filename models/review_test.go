package models

import "testing"

func TestReviewValidate(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		wantErr bool
	}{
		{"zero rating", 0, true},
		{"minimum rating", 1, false},
		{"maximum rating", 5, false},
		{"above maximum", 6, true},
		{"negative rating", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Review{Rating: tt.rating}
			err := r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() with rating %d error = %v, wantErr %v", tt.rating, err, tt.wantErr)
			}
		})
	}
}

func TestTrimComment(t *testing.T) {
	if got := TrimComment(""); got != nil {
		t.Errorf("expected nil for empty comment, got %q", *got)
	}
	if got := TrimComment("   \t\n"); got != nil {
		t.Errorf("expected nil for whitespace comment, got %q", *got)
	}
	if got := TrimComment("  great service  "); got == nil || *got != "great service" {
		t.Errorf("expected trimmed comment, got %v", got)
	}
}
