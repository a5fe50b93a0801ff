package section

import (
	"strings"
	"testing"

	"github.com/bhavya-dabas/docrank/model"
)

func TestAssembleTitleSection(t *testing.T) {
	a := NewAssembler()
	ol := model.Outline{Title: "Annual Report 2024"}

	sections := a.Assemble("report.pdf", "Annual Report", ol, map[int]string{})
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}

	sec := sections[0]
	if sec.Type != model.SectionTitle {
		t.Errorf("Type = %v, want SectionTitle", sec.Type)
	}
	if sec.Level != model.LevelTitle {
		t.Errorf("Level = %v, want LevelTitle", sec.Level)
	}
	if sec.Page != 0 {
		t.Errorf("Page = %d, want 0", sec.Page)
	}
	if sec.Title != "Annual Report 2024" || sec.Text != "Annual Report 2024" {
		t.Errorf("Title/Text = %q/%q, want the outline title for both", sec.Title, sec.Text)
	}
	if sec.Document != "report.pdf" || sec.DocumentTitle != "Annual Report" {
		t.Errorf("Document/DocumentTitle = %q/%q", sec.Document, sec.DocumentTitle)
	}
}

func TestAssembleNoTitle(t *testing.T) {
	a := NewAssembler()
	sections := a.Assemble("doc.pdf", "doc.pdf", model.Outline{}, map[int]string{})
	if len(sections) != 0 {
		t.Errorf("got %d sections, want 0 for empty outline and pages", len(sections))
	}
}

func TestHeadingBody(t *testing.T) {
	a := NewAssembler()

	page := strings.Join([]string{
		"Some preamble before the heading appears.",
		"Methodology",
		"We collected samples from forty sites.",
		"Each sample was processed within two hours.",
		"Results were recorded in triplicate.",
		"Statistical analysis used mixed models.",
		"RESULTS AND DISCUSSION",
		"This line belongs to the next section.",
	}, "\n")

	body := a.headingBody(map[int]string{0: page}, 0, "Methodology")

	if !strings.Contains(body, "forty sites") {
		t.Errorf("body missing text after heading: %q", body)
	}
	if strings.Contains(body, "preamble") {
		t.Errorf("body includes text before heading: %q", body)
	}
	if strings.Contains(body, "next section") {
		t.Errorf("body crossed the all-caps boundary: %q", body)
	}
}

func TestHeadingBodyNextPageTopUp(t *testing.T) {
	a := NewAssembler()

	pages := map[int]string{
		0: "Conclusions\nA short closing remark.",
		1: "The work continues on the following page.\nWith a few more lines of detail.",
	}

	body := a.headingBody(pages, 0, "Conclusions")
	if !strings.Contains(body, "closing remark") {
		t.Errorf("body missing same-page text: %q", body)
	}
	if !strings.Contains(body, "following page") {
		t.Errorf("short body was not topped up from next page: %q", body)
	}
}

func TestHeadingBodyMissingHeading(t *testing.T) {
	a := NewAssembler()
	pages := map[int]string{0: "no matching heading anywhere\nin this page text"}
	if body := a.headingBody(pages, 0, "Nonexistent Heading"); body != "" {
		t.Errorf("body = %q, want empty when heading never appears", body)
	}
}

func TestContentSections(t *testing.T) {
	a := NewAssembler()

	longPara := strings.Repeat("A sentence of ordinary body text continues here. ", 4)
	pages := map[int]string{
		1: "short paragraph\n\n" + longPara + "\n\n2. Numbered Heading Paragraph that is long enough to pass the minimum length gate for content",
	}

	sections := a.contentSections("doc.pdf", "Doc", pages)
	if len(sections) != 1 {
		t.Fatalf("got %d content sections, want 1: %+v", len(sections), sections)
	}

	sec := sections[0]
	if sec.Type != model.SectionContent || sec.Level != model.LevelContent {
		t.Errorf("Type/Level = %v/%v, want content", sec.Type, sec.Level)
	}
	if sec.Page != 1 {
		t.Errorf("Page = %d, want 1", sec.Page)
	}
	if sec.Title != "Content Block 1-1" {
		t.Errorf("Title = %q, want %q", sec.Title, "Content Block 1-1")
	}
}

func TestContentSectionsPageOrder(t *testing.T) {
	a := NewAssembler()

	para := strings.Repeat("Plenty of readable text in this paragraph right here. ", 3)
	pages := map[int]string{2: para, 0: para, 1: para}

	sections := a.contentSections("doc.pdf", "Doc", pages)
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}
	for i, sec := range sections {
		if sec.Page != i {
			t.Errorf("sections[%d].Page = %d, want %d (ascending page order)", i, sec.Page, i)
		}
	}
}
