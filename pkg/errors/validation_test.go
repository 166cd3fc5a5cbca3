package errors

import "testing"

func TestValidateFragmentID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "hero", false},
		{"dashes and digits", "scene-02", false},
		{"cyrillic", "станция", false},
		{"dots and colons", "act.1:intro", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"space", "two words", true},
		{"tab", "a\tb", true},
		{"hash", "a#b", true},
		{"percent", "100%", true},
		{"quote", `a"b`, true},
		{"angle", "<hero>", true},
		{"backtick", "a`b", true},
		{"pipe", "a|b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFragmentID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFragmentID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidCatalog) {
				t.Errorf("ValidateFragmentID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidCatalog)
			}
		})
	}
}

func TestValidateImageRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"https", "https://comiccon2025.github.io/dcHero.png", false},
		{"http", "http://example.com/a.png", false},
		{"relative", "img/panel.png", false},

		{"javascript", "javascript:alert(1)", true},
		{"file", "file:///etc/passwd", true},
		{"unparsable", "http://[::1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageRef(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImageRef(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
