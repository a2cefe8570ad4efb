package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyClasses(t *testing.T) {
	t.Parallel()

	p := New()
	p.AddClass(ClassCyber)
	p.AddClass(ClassRainbow)
	p.AddClass(ClassCyber)

	assert.Equal(t, []string{ClassCyber, ClassRainbow}, p.Classes())

	p.RemoveClass(ClassCyber)
	p.RemoveClass(ClassClassic)

	assert.False(t, p.HasClass(ClassCyber))
	assert.True(t, p.HasClass(ClassRainbow))

	assert.False(t, p.ToggleClass(ClassRainbow))
	assert.True(t, p.ToggleClass(ClassRainbow))
	assert.True(t, p.HasClass(ClassRainbow))
}

func TestMountAndSelect(t *testing.T) {
	t.Parallel()

	p := New()
	p.Mount(Element{ID: PredictButton, Text: "PREDICT"}, ClassPrimary)
	p.Mount(Element{ID: ModeToggle, Text: "toggle"})
	p.Mount(Element{ID: "other", Text: "other"}, ClassPrimary)

	primary := p.Select(ClassPrimary)
	require.Len(t, primary, 2)
	assert.Equal(t, PredictButton, primary[0].ID)
	assert.Equal(t, "other", primary[1].ID)

	p.Unmount(PredictButton)
	_, ok := p.Element(PredictButton)
	assert.False(t, ok)
	assert.Len(t, p.Select(ClassPrimary), 1)
}

func TestSetTextOnMissingElementIsNoop(t *testing.T) {
	t.Parallel()

	p := New()
	p.SetText(WordCounter, "3 words")

	_, ok := p.Element(WordCounter)
	assert.False(t, ok)

	p.Mount(Element{ID: WordCounter})
	p.SetText(WordCounter, "3 words")

	el, ok := p.Element(WordCounter)
	require.True(t, ok)
	assert.Equal(t, "3 words", el.Text)
}

func TestInjectOnce(t *testing.T) {
	t.Parallel()

	p := New()
	assert.True(t, p.Inject(Rainbow))
	assert.False(t, p.Inject(Rainbow))

	sheet, ok := p.Stylesheet(Rainbow.Name)
	require.True(t, ok)
	assert.Equal(t, ClassRainbow, sheet.Class)
}

func TestStylesheetSample(t *testing.T) {
	t.Parallel()

	start := Rainbow.Sample(0)
	assert.Equal(t, "#ff6b6b", start[0].Hex())
	assert.Equal(t, "#4ecdc4", start[1].Hex())

	quarter := Rainbow.Sample(750 * time.Millisecond)
	assert.Equal(t, "#4ecdc4", quarter[0].Hex())
	assert.Equal(t, "#45b7d1", quarter[1].Hex())

	looped := Rainbow.Sample(3*time.Second + 750*time.Millisecond)
	assert.Equal(t, quarter, looped)

	mid := Rainbow.Sample(375 * time.Millisecond)
	assert.NotEqual(t, "#ff6b6b", mid[0].Hex())
	assert.NotEqual(t, "#4ecdc4", mid[0].Hex())
}

func TestStylesheetSampleEmpty(t *testing.T) {
	t.Parallel()

	var s Stylesheet
	out := s.Sample(time.Second)
	assert.Equal(t, "#000000", out[0].Hex())
}
