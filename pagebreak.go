package texprep

import "regexp"

// PageBreakMarker is the canonical page-break token. The flattener rewrites
// \newpage and \clearpage to it, and the pandoc filter turns it into a raw
// OpenXML page break.
const PageBreakMarker = "PANDOCPAGEBREAK"

// Matches both recognized page-break spellings. The word boundary keeps
// longer command names (e.g. \newpagestyle) untouched.
var pageBreakPattern = regexp.MustCompile(`\\(?:newpage|clearpage)\b`)

// ConvertPageBreaks rewrites every \newpage and \clearpage command to
// PageBreakMarker. Running it on already-converted text is a no-op.
func ConvertPageBreaks(content string) string {
	return pageBreakPattern.ReplaceAllString(content, PageBreakMarker)
}
