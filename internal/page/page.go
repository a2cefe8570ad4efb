package page

import (
	"log/slog"
	"maps"
	"slices"
)

// Element ids and classes the UI attaches behaviour to.
const (
	PredictButton = "predict_btn"
	InputText     = "input_text"
	WordCounter   = "word-counter"
	ModeToggle    = "mode-toggle"

	ClassPrimary = "btn-primary"
	ClassAnchor  = "anchor"
)

// Body classes.
const (
	ClassClassic = "classic-mode"
	ClassCyber   = "cyber-mode"
	ClassRainbow = "rainbow-mode"
)

// Element is the projected state of one attachment point.
type Element struct {
	ID       string
	Text     string
	Disabled bool
	// Glow is the alpha of the hover shadow; zero means no inline glow.
	Glow float64
	// Gradient holds the two stops of the inline background, if set.
	Gradient [2]string
	Classes  map[string]bool
	Href     string
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	return e.Classes[class]
}

// Page is the write-only projection of UI state. Components write to it;
// only renderers read it back.
type Page struct {
	body     map[string]bool
	elements map[string]*Element
	order    []string
	sheets   map[string]Stylesheet
}

func New() *Page {
	return &Page{
		body:     make(map[string]bool),
		elements: make(map[string]*Element),
		sheets:   make(map[string]Stylesheet),
	}
}

// Mount attaches an element. Mounting an existing id replaces it.
func (p *Page) Mount(el Element, classes ...string) *Element {
	if el.Classes == nil {
		el.Classes = make(map[string]bool, len(classes))
	}
	for _, c := range classes {
		el.Classes[c] = true
	}

	if _, ok := p.elements[el.ID]; !ok {
		p.order = append(p.order, el.ID)
	}

	e := &el
	p.elements[el.ID] = e
	return e
}

// Unmount detaches an element; later lookups miss.
func (p *Page) Unmount(id string) {
	if _, ok := p.elements[id]; !ok {
		return
	}

	delete(p.elements, id)
	p.order = slices.DeleteFunc(p.order, func(s string) bool { return s == id })
}

// Element looks up a mounted element.
func (p *Page) Element(id string) (*Element, bool) {
	el, ok := p.elements[id]
	return el, ok
}

// Select returns the mounted elements carrying class, in mount order.
func (p *Page) Select(class string) []*Element {
	var out []*Element
	for _, id := range p.order {
		if el := p.elements[id]; el.Classes[class] {
			out = append(out, el)
		}
	}
	return out
}

func (p *Page) AddClass(class string) {
	p.body[class] = true
}

func (p *Page) RemoveClass(class string) {
	delete(p.body, class)
}

// ToggleClass flips class and reports whether it is now set.
func (p *Page) ToggleClass(class string) bool {
	if p.body[class] {
		delete(p.body, class)
		return false
	}

	p.body[class] = true
	return true
}

// HasClass is for renderers.
func (p *Page) HasClass(class string) bool {
	return p.body[class]
}

// Classes returns the body classes, sorted.
func (p *Page) Classes() []string {
	return slices.Sorted(maps.Keys(p.body))
}

// SetText writes the text of id when it is mounted.
func (p *Page) SetText(id, text string) {
	if el, ok := p.elements[id]; ok {
		el.Text = text
	}
}

// Inject registers a stylesheet. A name can be registered only once; later
// attempts are dropped and reported as false.
func (p *Page) Inject(sheet Stylesheet) bool {
	if _, ok := p.sheets[sheet.Name]; ok {
		slog.Debug("stylesheet already injected", "name", sheet.Name)
		return false
	}

	p.sheets[sheet.Name] = sheet
	return true
}

// Stylesheet returns an injected sheet by name.
func (p *Page) Stylesheet(name string) (Stylesheet, bool) {
	s, ok := p.sheets[name]
	return s, ok
}
