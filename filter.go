package texprep

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Raw OpenXML page-break constructs emitted by the filter.
const (
	openxmlFormat     = "openxml"
	pageBreakBlockXML = `<w:p><w:r><w:br w:type="page"/></w:r></w:p>`
	pageBreakInline   = `<w:br w:type="page"/>`
)

// Element is one tagged node of the Pandoc JSON AST: {"t": ..., "c": ...}.
// Content is kept as raw JSON; the walk decodes it generically so nested
// containers need no per-type decoding.
type Element struct {
	Tag     string          `json:"t"`
	Content json.RawMessage `json:"c,omitempty"`
}

// pandocDocument is the top-level Pandoc JSON document. Meta is carried
// through untouched.
type pandocDocument struct {
	APIVersion []int           `json:"pandoc-api-version"`
	Meta       json.RawMessage `json:"meta"`
	Blocks     []Element       `json:"blocks"`
}

// RunFilter reads a Pandoc JSON document from r, rewrites page-break
// markers into raw OpenXML constructs, and writes the document to w.
// Intended to run under `pandoc --filter` via the filter subcommand.
func RunFilter(r io.Reader, w io.Writer) error {
	var doc pandocDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrFilterDecode, err)
	}

	for i := range doc.Blocks {
		doc.Blocks[i] = FilterBlock(doc.Blocks[i])
	}

	if err := json.NewEncoder(w).Encode(&doc); err != nil {
		return fmt.Errorf("encoding pandoc document: %w", err)
	}
	return nil
}

// FilterBlock maps one block-level element and everything nested inside
// it. Three cases produce a replacement:
//
//   - a Para or Plain whose only inline is the Str PANDOCPAGEBREAK
//   - a latex RawBlock equal to \newpage or \clearpage
//   - a Str PANDOCPAGEBREAK among other inlines, which becomes a raw
//     inline break
//
// The walk recurses through every content payload, so markers inside
// list items, block quotes, divs, and inline wrappers like Emph are
// rewritten at any depth. Elements that match no case pass through
// byte-identical. The function holds no state across invocations.
func FilterBlock(block Element) Element {
	node := map[string]any{"t": block.Tag}
	if len(block.Content) > 0 {
		var content any
		if err := json.Unmarshal(block.Content, &content); err != nil {
			return block
		}
		node["c"] = content
	}

	replaced, changed := walkNode(node)
	if !changed {
		return block
	}
	return encodeElement(replaced, block)
}

// walkNode rewrites one {"t", "c"} node, recursing into its content when
// the node itself is not a page break.
func walkNode(node map[string]any) (map[string]any, bool) {
	tag, _ := node["t"].(string)

	switch tag {
	case "Str":
		if text, ok := node["c"].(string); ok && text == PageBreakMarker {
			return pageBreakInlineNode(), true
		}
	case "RawBlock":
		if pair, ok := node["c"].([]any); ok && len(pair) == 2 {
			format, _ := pair[0].(string)
			text, _ := pair[1].(string)
			if isPageBreakCommand(format, text) {
				return pageBreakBlockNode(), true
			}
		}
	case "Para", "Plain":
		if inlines, ok := node["c"].([]any); ok && len(inlines) == 1 && isMarkerNode(inlines[0]) {
			return pageBreakBlockNode(), true
		}
	}

	if content, ok := node["c"]; ok {
		if rewritten, changed := walkContent(content); changed {
			node["c"] = rewritten
			return node, true
		}
	}
	return node, false
}

// walkContent descends into an arbitrary content payload: arrays are
// walked element by element, nested nodes go through walkNode, scalars
// pass through.
func walkContent(v any) (any, bool) {
	switch val := v.(type) {
	case []any:
		changed := false
		for i := range val {
			if rewritten, c := walkContent(val[i]); c {
				val[i] = rewritten
				changed = true
			}
		}
		return val, changed
	case map[string]any:
		if _, ok := val["t"]; ok {
			return walkNode(val)
		}
	}
	return v, false
}

// isMarkerNode reports whether a decoded node is a Str holding exactly
// the page-break marker.
func isMarkerNode(v any) bool {
	node, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if tag, _ := node["t"].(string); tag != "Str" {
		return false
	}
	text, ok := node["c"].(string)
	return ok && text == PageBreakMarker
}

// isPageBreakCommand reports whether a raw payload is a LaTeX-dialect
// page-break command.
func isPageBreakCommand(format, text string) bool {
	if format != "latex" && format != "tex" {
		return false
	}
	text = strings.TrimSpace(text)
	return text == `\newpage` || text == `\clearpage`
}

// pageBreakBlockNode builds the block-level OpenXML page break.
func pageBreakBlockNode() map[string]any {
	return map[string]any{"t": "RawBlock", "c": []any{openxmlFormat, pageBreakBlockXML}}
}

// pageBreakInlineNode builds the inline-level OpenXML page break.
func pageBreakInlineNode() map[string]any {
	return map[string]any{"t": "RawInline", "c": []any{openxmlFormat, pageBreakInline}}
}

// encodeElement converts a walked node back to an Element, falling back
// to the original block if encoding fails.
func encodeElement(node map[string]any, fallback Element) Element {
	tag, _ := node["t"].(string)
	el := Element{Tag: tag}
	if content, ok := node["c"]; ok {
		raw, err := json.Marshal(content)
		if err != nil {
			return fallback
		}
		el.Content = raw
	}
	return el
}
