package classify

import (
	"testing"

	"github.com/inovacc/clipr/internal/model"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Category
	}{
		{
			name: "https url",
			text: "https://github.com/user/repo",
			want: model.CategoryURL,
		},
		{
			name: "http url",
			text: "http://example.com/path?q=1",
			want: model.CategoryURL,
		},
		{
			name: "www url without scheme",
			text: "www.example.com",
			want: model.CategoryURL,
		},
		{
			name: "mailto link",
			text: "mailto:someone@example.com",
			want: model.CategoryURL,
		},
		{
			name: "url with surrounding whitespace",
			text: "  https://example.com  ",
			want: model.CategoryURL,
		},
		{
			name: "sentence mentioning a url is not a url",
			text: "see https://example.com for details",
			want: model.CategoryPlaintext,
		},
		{
			name: "go function",
			text: "func main() {\n\tfmt.Println(\"hi\")\n}",
			want: model.CategoryCode,
		},
		{
			name: "c snippet with braces and semicolons",
			text: "int main(void) {\n    return 0;\n}",
			want: model.CategoryCode,
		},
		{
			name: "python def with indentation",
			text: "def add(a, b):\n    return a + b",
			want: model.CategoryCode,
		},
		{
			name: "single keyword alone is not enough",
			text: "import duties apply to these goods",
			want: model.CategoryPlaintext,
		},
		{
			name: "latex environment",
			text: "\\begin{align}\nx &= y\n\\end{align}",
			want: model.CategoryLaTeX,
		},
		{
			name: "latex fraction inline",
			text: "the ratio is \\frac{a}{b} in this case",
			want: model.CategoryLaTeX,
		},
		{
			name: "display math",
			text: "$$ e^{i\\pi} + 1 = 0 $$",
			want: model.CategoryLaTeX,
		},
		{
			name: "double quoted sentence",
			text: "\"The only way out is through.\"",
			want: model.CategoryQuote,
		},
		{
			name: "single quoted sentence",
			text: "'Stay hungry, stay foolish.'",
			want: model.CategoryQuote,
		},
		{
			name: "curly quoted sentence",
			text: "“Simplicity is the ultimate sophistication.”",
			want: model.CategoryQuote,
		},
		{
			name: "embedded quote in short passage",
			text: `As she put it, "we ship on Friday" and nobody argued.`,
			want: model.CategoryQuote,
		},
		{
			name: "plain sentence",
			text: "Pick up milk on the way home tonight.",
			want: model.CategoryPlaintext,
		},
		{
			name: "empty string",
			text: "",
			want: model.CategoryPlaintext,
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: model.CategoryPlaintext,
		},
		{
			name: "url wins over code",
			text: "https://example.com/{id};",
			want: model.CategoryURL,
		},
		{
			name: "code wins over latex",
			text: "format(\"\\\\sum\");\nprint(x);\n    done",
			want: model.CategoryCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassifyDeterministicAndTotal(t *testing.T) {
	inputs := []string{
		"", " ", "x", "https://a.b", "func f() {}", "\\frac{1}{2}",
		"\"quoted\"", "plain text", "{};", "\x00\x01binary-ish",
		"multi\nline\ntext", "日本語のテキスト",
	}

	for _, input := range inputs {
		first := Classify(input)
		require.True(t, first.Valid(), "input %q must map to a known category", input)

		// Same input, same label, every time.
		for range 3 {
			require.Equal(t, first, Classify(input))
		}
	}
}
