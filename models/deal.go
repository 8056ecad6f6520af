package models

// DealRow is one record from the input CSV. The Raw fields come straight
// from the file; the Clean fields are filled in by the normalizer before
// generation.
type DealRow struct {
	RawTitle       string
	RawDescription string

	CleanTitle       string
	CleanDescription string

	// Extra holds values of input columns beyond the two required ones,
	// in header order, so they can be passed through to the output.
	Extra []string
}

// GenerationResult holds the generated output fields for a single row.
// Err is empty on success; on failure the other fields carry the
// deterministic fallback (clean title, clean description, empty SEO text).
type GenerationResult struct {
	Title           string
	HTMLDescription string
	SEODescription  string
	Err             string
}

// RunReport summarises a completed batch.
type RunReport struct {
	TotalRows      int
	Generated      int
	Fallbacks      int
	FailureReasons map[string]int
	LongestTitle   string
}
