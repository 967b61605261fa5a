package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "local format with leading zero",
			input: "08012345678",
			want:  "2348012345678",
		},
		{
			name:  "international with plus, spaces and dashes",
			input: "+234 801-234-5678",
			want:  "2348012345678",
		},
		{
			name:  "already normalized",
			input: "2348012345678",
			want:  "2348012345678",
		},
		{
			name:  "plus prefix without separators",
			input: "+2348012345678",
			want:  "2348012345678",
		},
		{
			name:  "bare subscriber number",
			input: "8012345678",
			want:  "2348012345678",
		},
		{
			name:  "local format with spaces",
			input: "0801 234 5678",
			want:  "2348012345678",
		},
		{
			name:  "local format with dashes",
			input: "0801-234-5678",
			want:  "2348012345678",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
