package model

import "fmt"

// CardBuilder assembles a single card document. Sections and widgets are
// append-only; the builder never talks to the network. All Add operations
// take an optional trailing section index: absent means "the most recently
// added section", and an explicit 0 targets the first section. The two cases
// are distinct, which is why the parameter is variadic rather than an int
// with a sentinel default.
type CardBuilder struct {
	card Card
}

// NewCardBuilder starts a card with the given header and no sections.
func NewCardBuilder(title, subtitle string) *CardBuilder {
	return &CardBuilder{
		card: Card{
			Header:   CardHeader{Title: title, Subtitle: subtitle},
			Sections: []Section{},
		},
	}
}

// AddSection appends an empty section and returns its index. An empty header
// is omitted from the serialized card.
func (b *CardBuilder) AddSection(header string) int {
	b.card.Sections = append(b.card.Sections, Section{
		Header:  header,
		Widgets: []Widget{},
	})
	return len(b.card.Sections) - 1
}

// resolveSection picks the section a widget lands in. With no explicit index
// it resolves to the last section, so callers can build fluently against the
// "current" section.
func (b *CardBuilder) resolveSection(section []int) (*Section, error) {
	if len(b.card.Sections) == 0 {
		return nil, ErrNoSection
	}
	if len(section) == 0 {
		return &b.card.Sections[len(b.card.Sections)-1], nil
	}
	idx := section[0]
	if idx < 0 || idx >= len(b.card.Sections) {
		return nil, fmt.Errorf("%w: %d (have %d sections)", ErrSectionIndex, idx, len(b.card.Sections))
	}
	return &b.card.Sections[idx], nil
}

func (b *CardBuilder) appendWidget(w Widget, section []int) error {
	s, err := b.resolveSection(section)
	if err != nil {
		return err
	}
	s.Widgets = append(s.Widgets, w)
	return nil
}

// AddText appends a text paragraph widget.
func (b *CardBuilder) AddText(text string, section ...int) error {
	return b.appendWidget(Widget{TextParagraph: &TextParagraph{Text: text}}, section)
}

// AddImage appends an image widget.
func (b *CardBuilder) AddImage(url, altText string, section ...int) error {
	return b.appendWidget(Widget{Image: &Image{ImageURL: url, AltText: altText}}, section)
}

// AddDivider appends a divider widget.
func (b *CardBuilder) AddDivider(section ...int) error {
	return b.appendWidget(Widget{Divider: &Divider{}}, section)
}

// KeyValueOptions carries the optional parts of a key-value widget. A button
// is attached only when both ButtonText and ButtonURL are set; supplying just
// one of them omits the button rather than erroring.
type KeyValueOptions struct {
	TopLabel    string
	BottomLabel string
	Icon        Icon
	Multiline   bool
	ButtonText  string
	ButtonURL   string
}

// AddKeyValue appends a key-value widget with the given content.
func (b *CardBuilder) AddKeyValue(content string, opts KeyValueOptions, section ...int) error {
	kv := &KeyValue{
		TopLabel:         opts.TopLabel,
		Content:          content,
		ContentMultiline: opts.Multiline,
		BottomLabel:      opts.BottomLabel,
		Icon:             opts.Icon,
	}
	if opts.ButtonText != "" && opts.ButtonURL != "" {
		kv.Button = &Button{
			TextButton: &TextButton{
				Text:    opts.ButtonText,
				OnClick: OnClick{OpenLink: OpenLink{URL: opts.ButtonURL}},
			},
		}
	}
	return b.appendWidget(Widget{KeyValue: kv}, section)
}

// DecoratedTextOptions carries the optional parts of a decorated text widget.
type DecoratedTextOptions struct {
	StartIcon  Icon
	EndIcon    Icon
	OnClickURL string
}

// AddDecoratedText appends a decorated text widget. OnClickURL, when set,
// becomes an open-link action on the widget.
func (b *CardBuilder) AddDecoratedText(text string, opts DecoratedTextOptions, section ...int) error {
	dt := &DecoratedText{
		Text:      text,
		StartIcon: opts.StartIcon,
		EndIcon:   opts.EndIcon,
	}
	if opts.OnClickURL != "" {
		dt.OnClick = &OnClick{OpenLink: OpenLink{URL: opts.OnClickURL}}
	}
	return b.appendWidget(Widget{DecoratedText: dt}, section)
}

// ButtonOptions describes a single button. Text wins over ImageURL when both
// are set; Name labels an image button and defaults to "Button".
type ButtonOptions struct {
	Text     string
	URL      string
	ImageURL string
	Name     string
}

// AddButton appends a button-group widget holding one button. The URL is
// mandatory: a button with no destination is meaningless.
func (b *CardBuilder) AddButton(opts ButtonOptions, section ...int) error {
	if opts.URL == "" {
		return ErrMissingURL
	}

	var button Button
	switch {
	case opts.Text != "":
		button = Button{
			TextButton: &TextButton{
				Text:    opts.Text,
				OnClick: OnClick{OpenLink: OpenLink{URL: opts.URL}},
			},
		}
	case opts.ImageURL != "":
		name := opts.Name
		if name == "" {
			name = "Button"
		}
		button = Button{
			ImageButton: &ImageButton{
				Name:    name,
				IconURL: opts.ImageURL,
				OnClick: OnClick{OpenLink: OpenLink{URL: opts.URL}},
			},
		}
	default:
		return ErrMissingButtonContent
	}

	return b.appendWidget(Widget{Buttons: []Button{button}}, section)
}

// Build returns a snapshot payload wrapping the card. The snapshot is a deep
// copy: later mutations of the builder do not leak into payloads already
// handed out, and repeated calls after identical mutations yield structurally
// equal payloads.
func (b *CardBuilder) Build() Payload {
	return Payload{Cards: []Card{cloneCard(b.card)}}
}

func cloneCard(c Card) Card {
	out := Card{Header: c.Header, Sections: make([]Section, len(c.Sections))}
	for i, s := range c.Sections {
		cs := Section{Header: s.Header, Widgets: make([]Widget, len(s.Widgets))}
		for j, w := range s.Widgets {
			cs.Widgets[j] = cloneWidget(w)
		}
		out.Sections[i] = cs
	}
	return out
}

func cloneWidget(w Widget) Widget {
	var out Widget
	if w.TextParagraph != nil {
		tp := *w.TextParagraph
		out.TextParagraph = &tp
	}
	if w.Image != nil {
		img := *w.Image
		out.Image = &img
	}
	if w.Divider != nil {
		out.Divider = &Divider{}
	}
	if w.KeyValue != nil {
		kv := *w.KeyValue
		if kv.Button != nil {
			kv.Button = cloneButton(kv.Button)
		}
		out.KeyValue = &kv
	}
	if w.DecoratedText != nil {
		dt := *w.DecoratedText
		if dt.OnClick != nil {
			oc := *dt.OnClick
			dt.OnClick = &oc
		}
		out.DecoratedText = &dt
	}
	if w.Buttons != nil {
		out.Buttons = make([]Button, len(w.Buttons))
		for i := range w.Buttons {
			out.Buttons[i] = *cloneButton(&w.Buttons[i])
		}
	}
	return out
}

func cloneButton(b *Button) *Button {
	out := &Button{}
	if b.TextButton != nil {
		tb := *b.TextButton
		out.TextButton = &tb
	}
	if b.ImageButton != nil {
		ib := *b.ImageButton
		out.ImageButton = &ib
	}
	return out
}
