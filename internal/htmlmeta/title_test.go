package htmlmeta

import "testing"

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "simple",
			body: "<html><head><title>Evaluate a simple RAG system - Ragas</title></head><body></body></html>",
			want: "Evaluate a simple RAG system - Ragas",
		},
		{
			name: "whitespace collapsed",
			body: "<title>\n  Experimentation \n\t- Ragas\n</title>",
			want: "Experimentation - Ragas",
		},
		{
			name: "entities decoded",
			body: "<title>Q&amp;A</title>",
			want: "Q&A",
		},
		{
			name: "first title wins",
			body: "<title>one</title><svg><title>two</title></svg>",
			want: "one",
		},
		{
			name: "no title",
			body: "<html>ok</html>",
			want: "",
		},
		{
			name: "not html",
			body: "\x00\x01binary",
			want: "",
		},
		{
			name: "unterminated",
			body: "<title>cut off",
			want: "cut off",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title([]byte(tt.body)); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}
