package texprep_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	texprep "github.com/alnah/go-texprep"
)

// el builds an Element with a JSON-encoded content payload.
func el(t *testing.T, tag string, content any) texprep.Element {
	t.Helper()
	if content == nil {
		return texprep.Element{Tag: tag}
	}
	raw, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("marshaling element content: %v", err)
	}
	return texprep.Element{Tag: tag, Content: raw}
}

// contentPair decodes a [format, text] content payload.
func contentPair(t *testing.T, e texprep.Element) [2]string {
	t.Helper()
	var pair [2]string
	if err := json.Unmarshal(e.Content, &pair); err != nil {
		t.Fatalf("decoding element content: %v", err)
	}
	return pair
}

// ---------------------------------------------------------------------------
// TestFilterBlock - element dispatch
// ---------------------------------------------------------------------------

func TestFilterBlock_MarkerParagraph(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"Para", "Plain"} {
		block := el(t, tag, []texprep.Element{el(t, "Str", "PANDOCPAGEBREAK")})
		got := texprep.FilterBlock(block)
		if got.Tag != "RawBlock" {
			t.Errorf("%s: FilterBlock().Tag = %q, want RawBlock", tag, got.Tag)
			continue
		}
		pair := contentPair(t, got)
		if pair[0] != "openxml" || !strings.Contains(pair[1], `w:br w:type="page"`) {
			t.Errorf("%s: replacement = %v", tag, pair)
		}
	}
}

func TestFilterBlock_RawLatexPageBreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   string
		text     string
		replaced bool
	}{
		{name: "newpage", format: "latex", text: `\newpage`, replaced: true},
		{name: "clearpage", format: "latex", text: `\clearpage`, replaced: true},
		{name: "tex dialect", format: "tex", text: `\newpage`, replaced: true},
		{name: "surrounding whitespace", format: "latex", text: "\\newpage\n", replaced: true},
		{name: "other latex", format: "latex", text: `\tableofcontents`, replaced: false},
		{name: "other dialect", format: "html", text: `\newpage`, replaced: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			block := el(t, "RawBlock", [2]string{tt.format, tt.text})
			got := texprep.FilterBlock(block)
			pair := contentPair(t, got)
			if tt.replaced {
				if pair[0] != "openxml" {
					t.Errorf("FilterBlock() content = %v, want openxml replacement", pair)
				}
			} else {
				if pair[0] != tt.format || pair[1] != tt.text {
					t.Errorf("FilterBlock() modified a non-matching block: %v", pair)
				}
			}
		})
	}
}

func TestFilterBlock_InlineMarker(t *testing.T) {
	t.Parallel()

	block := el(t, "Para", []texprep.Element{
		el(t, "Str", "before"),
		el(t, "Space", nil),
		el(t, "Str", "PANDOCPAGEBREAK"),
		el(t, "Space", nil),
		el(t, "Str", "after"),
	})
	got := texprep.FilterBlock(block)
	if got.Tag != "Para" {
		t.Fatalf("FilterBlock().Tag = %q, want Para", got.Tag)
	}

	var inlines []texprep.Element
	if err := json.Unmarshal(got.Content, &inlines); err != nil {
		t.Fatalf("decoding inlines: %v", err)
	}
	if inlines[2].Tag != "RawInline" {
		t.Errorf("marker inline not replaced: %+v", inlines[2])
	}
	if inlines[0].Tag != "Str" || inlines[4].Tag != "Str" {
		t.Errorf("neighboring inlines modified: %+v", inlines)
	}
}

func TestFilterBlock_MarkerInsideListItem(t *testing.T) {
	t.Parallel()

	item := []texprep.Element{el(t, "Para", []texprep.Element{el(t, "Str", "PANDOCPAGEBREAK")})}
	block := el(t, "BulletList", [][]texprep.Element{item})

	got := texprep.FilterBlock(block)
	if got.Tag != "BulletList" {
		t.Fatalf("FilterBlock().Tag = %q, want BulletList", got.Tag)
	}

	var items [][]texprep.Element
	if err := json.Unmarshal(got.Content, &items); err != nil {
		t.Fatalf("decoding list items: %v", err)
	}
	if items[0][0].Tag != "RawBlock" {
		t.Errorf("nested marker paragraph not replaced: %+v", items[0][0])
	}
	pair := contentPair(t, items[0][0])
	if pair[0] != "openxml" {
		t.Errorf("replacement = %v, want openxml", pair)
	}
}

func TestFilterBlock_MarkerInsideBlockQuote(t *testing.T) {
	t.Parallel()

	block := el(t, "BlockQuote", []texprep.Element{
		el(t, "Para", []texprep.Element{el(t, "Str", "PANDOCPAGEBREAK")}),
	})

	got := texprep.FilterBlock(block)
	if got.Tag != "BlockQuote" {
		t.Fatalf("FilterBlock().Tag = %q, want BlockQuote", got.Tag)
	}

	var blocks []texprep.Element
	if err := json.Unmarshal(got.Content, &blocks); err != nil {
		t.Fatalf("decoding quoted blocks: %v", err)
	}
	if blocks[0].Tag != "RawBlock" {
		t.Errorf("quoted marker paragraph not replaced: %+v", blocks[0])
	}
}

func TestFilterBlock_MarkerInsideInlineWrapper(t *testing.T) {
	t.Parallel()

	block := el(t, "Para", []texprep.Element{
		el(t, "Emph", []texprep.Element{el(t, "Str", "PANDOCPAGEBREAK")}),
	})

	got := texprep.FilterBlock(block)
	if got.Tag != "Para" {
		t.Fatalf("FilterBlock().Tag = %q, want Para", got.Tag)
	}

	var inlines []texprep.Element
	if err := json.Unmarshal(got.Content, &inlines); err != nil {
		t.Fatalf("decoding inlines: %v", err)
	}
	var wrapped []texprep.Element
	if err := json.Unmarshal(inlines[0].Content, &wrapped); err != nil {
		t.Fatalf("decoding wrapped inlines: %v", err)
	}
	if wrapped[0].Tag != "RawInline" {
		t.Errorf("marker inside Emph not replaced: %+v", wrapped[0])
	}
}

func TestFilterBlock_OtherElementsUnchanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block texprep.Element
	}{
		{name: "header", block: el(t, "Header", []any{1, []any{"id", []any{}, []any{}}, []any{}})},
		{name: "plain paragraph", block: el(t, "Para", []texprep.Element{el(t, "Str", "hello")})},
		{name: "horizontal rule", block: texprep.Element{Tag: "HorizontalRule"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := texprep.FilterBlock(tt.block)
			if got.Tag != tt.block.Tag {
				t.Errorf("FilterBlock().Tag = %q, want %q", got.Tag, tt.block.Tag)
			}
			if !bytes.Equal(got.Content, tt.block.Content) {
				t.Errorf("FilterBlock() modified content: %s -> %s", tt.block.Content, got.Content)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunFilter - end-to-end JSON round trip
// ---------------------------------------------------------------------------

func TestRunFilter(t *testing.T) {
	t.Parallel()

	input := `{
		"pandoc-api-version": [1, 23, 1],
		"meta": {"title": {"t": "MetaString", "c": "Doc"}},
		"blocks": [
			{"t": "Para", "c": [{"t": "Str", "c": "hello"}]},
			{"t": "Para", "c": [{"t": "Str", "c": "PANDOCPAGEBREAK"}]}
		]
	}`

	var out bytes.Buffer
	if err := texprep.RunFilter(strings.NewReader(input), &out); err != nil {
		t.Fatalf("RunFilter() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, `"RawBlock"`) || !strings.Contains(got, "openxml") {
		t.Errorf("marker paragraph not replaced:\n%s", got)
	}
	if !strings.Contains(got, `"hello"`) {
		t.Errorf("ordinary paragraph lost:\n%s", got)
	}
	if !strings.Contains(got, `"title"`) {
		t.Errorf("meta not carried through:\n%s", got)
	}
}

func TestRunFilter_MarkerInsideList(t *testing.T) {
	t.Parallel()

	input := `{
		"pandoc-api-version": [1, 23, 1],
		"meta": {},
		"blocks": [
			{"t": "BulletList", "c": [[{"t": "Para", "c": [{"t": "Str", "c": "PANDOCPAGEBREAK"}]}]]}
		]
	}`

	var out bytes.Buffer
	if err := texprep.RunFilter(strings.NewReader(input), &out); err != nil {
		t.Fatalf("RunFilter() error = %v", err)
	}

	got := out.String()
	if strings.Contains(got, "PANDOCPAGEBREAK") {
		t.Errorf("marker inside list item survived:\n%s", got)
	}
	if !strings.Contains(got, `"RawBlock"`) || !strings.Contains(got, "openxml") {
		t.Errorf("list-item marker not rewritten:\n%s", got)
	}
}

func TestRunFilter_InvalidJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := texprep.RunFilter(strings.NewReader("not json"), &out)
	if err == nil {
		t.Fatal("RunFilter() error = nil, want decode error")
	}
}
