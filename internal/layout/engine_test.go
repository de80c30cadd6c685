package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-compiler/internal/flow"
	"github.com/jonathan/cv-compiler/internal/fonts"
)

func newTestRegistry(t *testing.T) *fonts.Registry {
	t.Helper()
	reg := fonts.NewRegistry()
	require.NoError(t, fonts.LoadBuiltin(reg))
	return reg
}

func testStyle() flow.TextStyle {
	return flow.TextStyle{
		Family:     fonts.BuiltinBody,
		Style:      fonts.Regular,
		Size:       10,
		LineHeight: 12,
	}
}

func testFrame() Frame {
	return Frame{
		PageWidth:  400,
		PageHeight: 500,
		Margins:    Margins{Top: 20, Right: 10, Bottom: 20, Left: 10},
	}
}

// narrowFrame returns a frame whose content column fits exactly one word per
// line and whose content height is exactly lines line-heights. Paragraphs
// laid into it wrap to one line per word, which makes page counts exact.
func narrowFrame(t *testing.T, reg *fonts.Registry, style flow.TextStyle, word string, lines int) Frame {
	t.Helper()
	m, err := reg.MetricsFor(style.Family, style.Style)
	require.NoError(t, err)
	wordWidth := m.StringWidth(word, style.Size)
	return Frame{
		PageWidth:  1.5*wordWidth + 20,
		PageHeight: float64(lines)*style.LineHeight + 40,
		Margins:    Margins{Top: 20, Right: 10, Bottom: 20, Left: 10},
	}
}

func TestPaginate_EmptySequenceYieldsOneEmptyPage(t *testing.T) {
	reg := newTestRegistry(t)

	doc, err := Paginate(nil, testFrame(), reg)

	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)
	assert.Equal(t, 1, doc.Pages[0].Number)
	assert.Empty(t, doc.Pages[0].Units)
}

func TestPaginate_SinglePageStacksUnitsTopDown(t *testing.T) {
	reg := newTestRegistry(t)
	style := testStyle()
	frame := testFrame()

	units := []flow.Unit{
		flow.NewParagraph("Jonathan Matsumoto", style),
		flow.NewSpacer(8),
		flow.NewParagraph("Backend engineer.", style),
	}

	doc, err := Paginate(units, frame, reg)

	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)
	placed := doc.Pages[0].Units
	require.Len(t, placed, 3)

	y := frame.ContentTop()
	for _, p := range placed {
		assert.Equal(t, frame.ContentLeft(), p.X)
		assert.Equal(t, frame.ContentWidth(), p.Width)
		assert.InDelta(t, y, p.Y, 1e-9)
		y += p.Height
	}
}

func TestPaginate_ForcedBreakStartsNewPage(t *testing.T) {
	reg := newTestRegistry(t)
	style := testStyle()

	units := []flow.Unit{
		flow.NewParagraph("Acme Corp", style),
		flow.NewForcedBreak(),
		flow.NewParagraph("Globex", style),
	}

	doc, err := Paginate(units, testFrame(), reg)

	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)
	require.Len(t, doc.Pages[0].Units, 1)
	require.Len(t, doc.Pages[1].Units, 1)
	assert.Equal(t, "Acme Corp", doc.Pages[0].Units[0].Unit.Text)
	assert.Equal(t, "Globex", doc.Pages[1].Units[0].Unit.Text)
}

func TestPaginate_TrailingForcedBreakProducesNoBlankPage(t *testing.T) {
	reg := newTestRegistry(t)
	style := testStyle()

	units := []flow.Unit{
		flow.NewParagraph("only entry", style),
		flow.NewForcedBreak(),
	}

	doc, err := Paginate(units, testFrame(), reg)

	require.NoError(t, err)
	assert.Len(t, doc.Pages, 1)
}

func TestPaginate_ConsecutiveForcedBreaksCollapse(t *testing.T) {
	reg := newTestRegistry(t)
	style := testStyle()

	units := []flow.Unit{
		flow.NewParagraph("first", style),
		flow.NewForcedBreak(),
		flow.NewForcedBreak(),
		flow.NewForcedBreak(),
		flow.NewParagraph("second", style),
	}

	doc, err := Paginate(units, testFrame(), reg)

	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)
	assert.Equal(t, "second", doc.Pages[1].Units[0].Unit.Text)
}

func TestPaginate_ForcedBreakOnEmptyPageIsIgnored(t *testing.T) {
	reg := newTestRegistry(t)
	style := testStyle()

	units := []flow.Unit{
		flow.NewForcedBreak(),
		flow.NewParagraph("content", style),
	}

	doc, err := Paginate(units, testFrame(), reg)

	require.NoError(t, err)
	assert.Len(t, doc.Pages, 1)
}

func TestPaginate_AtomicUnitMovesWholeToNextPage(t *testing.T) {
	reg := newTestRegistry(t)
	frame := testFrame()
	style := testStyle()
	style.LineHeight = 50

	units := []flow.Unit{
		flow.NewSpacer(frame.ContentHeight() - 10),
		flow.NewSpacedHeading("EXPERIENCE", style, 3.5),
	}

	doc, err := Paginate(units, frame, reg)

	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)
	require.Len(t, doc.Pages[1].Units, 1)
	heading := doc.Pages[1].Units[0]
	assert.Equal(t, flow.SpacedHeading, heading.Unit.Kind)
	assert.InDelta(t, frame.ContentTop(), heading.Y, 1e-9)
}

func TestPaginate_AtomicUnitTallerThanPageFails(t *testing.T) {
	reg := newTestRegistry(t)
	frame := testFrame()
	style := testStyle()
	style.LineHeight = frame.ContentHeight() + 1

	units := []flow.Unit{flow.NewSpacedHeading("TOO TALL", style, 0)}

	_, err := Paginate(units, frame, reg)

	require.Error(t, err)
	var overflow *OverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, flow.SpacedHeading.String(), overflow.UnitKind)
}

func TestPaginate_OversizedSpacerIsDropped(t *testing.T) {
	reg := newTestRegistry(t)
	frame := testFrame()
	style := testStyle()

	units := []flow.Unit{
		flow.NewParagraph("before", style),
		flow.NewSpacer(frame.ContentHeight() * 2),
		flow.NewParagraph("after", style),
	}

	doc, err := Paginate(units, frame, reg)

	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)
	require.Len(t, doc.Pages[0].Units, 2)
	assert.Equal(t, "after", doc.Pages[0].Units[1].Unit.Text)
}

func TestPaginate_ParagraphSplitsAcrossExactlyThreePages(t *testing.T) {
	reg := newTestRegistry(t)
	style := testStyle()
	frame := narrowFrame(t, reg, style, "word", 10)

	// One heading line plus 25 one-word lines into 10-line pages:
	// 1 + 9 on page one, 10 on page two, 6 on page three.
	heading := flow.NewParagraph("word", style)
	body := flow.NewParagraph(strings.TrimSpace(strings.Repeat("word ", 25)), style)

	doc, err := Paginate([]flow.Unit{heading, body}, frame, reg)

	require.NoError(t, err)
	require.Len(t, doc.Pages, 3)

	require.Len(t, doc.Pages[0].Units, 2)
	assert.Equal(t, 9, len(doc.Pages[0].Units[1].Unit.Wrapped))
	require.Len(t, doc.Pages[1].Units, 1)
	assert.Equal(t, 10, len(doc.Pages[1].Units[0].Unit.Wrapped))
	require.Len(t, doc.Pages[2].Units, 1)
	assert.Equal(t, 6, len(doc.Pages[2].Units[0].Unit.Wrapped))

	// Continuation fragments start at the top of their page.
	assert.InDelta(t, frame.ContentTop(), doc.Pages[1].Units[0].Y, 1e-9)
	assert.InDelta(t, frame.ContentTop(), doc.Pages[2].Units[0].Y, 1e-9)
}

func TestPaginate_SplitFragmentsAreWholeLines(t *testing.T) {
	reg := newTestRegistry(t)
	style := testStyle()
	frame := narrowFrame(t, reg, style, "word", 7)

	body := flow.NewParagraph(strings.TrimSpace(strings.Repeat("word ", 23)), style)

	doc, err := Paginate([]flow.Unit{body}, frame, reg)

	require.NoError(t, err)
	total := 0
	for _, page := range doc.Pages {
		for _, p := range page.Units {
			lines := float64(len(p.Unit.Wrapped))
			assert.InDelta(t, lines*style.LineHeight, p.Height, 1e-9)
			assert.LessOrEqual(t, p.Y+p.Height, frame.ContentBottom()+1e-9)
			total += len(p.Unit.Wrapped)
		}
	}
	assert.Equal(t, 23, total)
}

func TestPaginate_SingleLineTallerThanPageFails(t *testing.T) {
	reg := newTestRegistry(t)
	frame := testFrame()
	style := testStyle()
	style.LineHeight = frame.ContentHeight() + 1

	units := []flow.Unit{flow.NewParagraph("one two three", style)}

	_, err := Paginate(units, frame, reg)

	var overflow *OverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, flow.Paragraph.String(), overflow.UnitKind)
}
