package texprep_test

import (
	"testing"

	texprep "github.com/alnah/go-texprep"
)

func TestConvertPageBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "newpage converted",
			input:    `before \newpage after`,
			expected: "before PANDOCPAGEBREAK after",
		},
		{
			name:     "clearpage converted",
			input:    `before \clearpage after`,
			expected: "before PANDOCPAGEBREAK after",
		},
		{
			name:     "both spellings in one document",
			input:    "\\newpage\ntext\n\\clearpage\n",
			expected: "PANDOCPAGEBREAK\ntext\nPANDOCPAGEBREAK\n",
		},
		{
			name:     "longer command names untouched",
			input:    `\newpagestyle{plain}`,
			expected: `\newpagestyle{plain}`,
		},
		{
			name:     "no page breaks",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := texprep.ConvertPageBreaks(tt.input)
			if got != tt.expected {
				t.Errorf("ConvertPageBreaks() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertPageBreaks_Idempotent(t *testing.T) {
	t.Parallel()

	once := texprep.ConvertPageBreaks("a \\newpage b \\clearpage c")
	twice := texprep.ConvertPageBreaks(once)
	if once != twice {
		t.Errorf("second conversion changed output: %q -> %q", once, twice)
	}
}
