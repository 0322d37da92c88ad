// Package catalog holds the compiled-in table of documentation pages to fetch.
package catalog

import "github.com/vertextoedge/docfetch/internal/domain"

// DefaultOutputDir is where the pages are written relative to the working directory
const DefaultOutputDir = "evals/datasets/ragas_docs"

// entries is kept unexported so callers cannot mutate the table.
var entries = []domain.DownloadEntry{
	{Filename: "rag_eval_v0.3.3.html", URL: "https://docs.ragas.io/en/v0.3.3/getstarted/rag_eval/"},
	{Filename: "rag_eval_v0.3.0.html", URL: "https://docs.ragas.io/en/v0.3.0/getstarted/rag_eval/"},
	{Filename: "cli_rag_eval_stable.html", URL: "https://docs.ragas.io/en/stable/howtos/cli/rag_eval/"},
	{Filename: "experimentation_stable.html", URL: "https://docs.ragas.io/en/stable/concepts/experimentation/"},
}

// Entries returns a copy of the table in fetch order
func Entries() []domain.DownloadEntry {
	out := make([]domain.DownloadEntry, len(entries))
	copy(out, entries)
	return out
}
