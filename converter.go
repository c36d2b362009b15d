package docindex

// Converter converts HTML markup to Markdown for terminal presentation.
type Converter interface {
	// Convert transforms HTML content, such as a highlighted search label
	// or a rendered index, into Markdown.
	Convert(html string) (string, error)
}
