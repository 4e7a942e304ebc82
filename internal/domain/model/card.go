package model

// Google Chat v1 card schema.
// Reference: https://developers.google.com/chat/api/reference/rest/v1/cards

// Payload is the top-level document posted to a chat webhook.
type Payload struct {
	Cards []Card `json:"cards"`
}

// Card is the root visual container: a header plus ordered sections.
type Card struct {
	Header   CardHeader `json:"header"`
	Sections []Section  `json:"sections"`
}

type CardHeader struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Section groups widgets under an optional header. Sections are append-only;
// a section's position in Card.Sections is stable once assigned.
type Section struct {
	Header  string   `json:"header,omitempty"`
	Widgets []Widget `json:"widgets"`
}

// Widget is a tagged variant: exactly one of the fields is set, and the
// serialized key doubles as the discriminator.
type Widget struct {
	TextParagraph *TextParagraph `json:"textParagraph,omitempty"`
	Image         *Image         `json:"image,omitempty"`
	Divider       *Divider       `json:"divider,omitempty"`
	KeyValue      *KeyValue      `json:"keyValue,omitempty"`
	DecoratedText *DecoratedText `json:"decoratedText,omitempty"`
	Buttons       []Button       `json:"buttons,omitempty"`
}

type TextParagraph struct {
	Text string `json:"text"`
}

type Image struct {
	ImageURL string `json:"imageUrl"`
	AltText  string `json:"altText"`
}

// Divider renders as an empty object on the wire.
type Divider struct{}

type KeyValue struct {
	TopLabel         string  `json:"topLabel,omitempty"`
	Content          string  `json:"content"`
	ContentMultiline bool    `json:"contentMultiline,omitempty"`
	BottomLabel      string  `json:"bottomLabel,omitempty"`
	Icon             Icon    `json:"icon,omitempty"`
	Button           *Button `json:"button,omitempty"`
}

type DecoratedText struct {
	Text      string   `json:"text"`
	StartIcon Icon     `json:"startIcon,omitempty"`
	EndIcon   Icon     `json:"endIcon,omitempty"`
	OnClick   *OnClick `json:"onClick,omitempty"`
}

// Button is a tagged variant: a text button or an image button, never both.
type Button struct {
	TextButton  *TextButton  `json:"textButton,omitempty"`
	ImageButton *ImageButton `json:"imageButton,omitempty"`
}

type TextButton struct {
	Text    string  `json:"text"`
	OnClick OnClick `json:"onClick"`
}

type ImageButton struct {
	Name    string  `json:"name"`
	IconURL string  `json:"iconUrl"`
	OnClick OnClick `json:"onClick"`
}

type OnClick struct {
	OpenLink OpenLink `json:"openLink"`
}

type OpenLink struct {
	URL string `json:"url"`
}

// Icon names a built-in chat icon. The constants below cover the icons the
// bot uses; any other string is passed through unchanged so icons unknown to
// this enum keep working.
type Icon string

const (
	IconPerson      Icon = "PERSON"
	IconEmail       Icon = "EMAIL"
	IconPhone       Icon = "PHONE"
	IconFlight      Icon = "AIRPLANE"
	IconCalendar    Icon = "CALENDAR"
	IconCheckCircle Icon = "CHECK_CIRCLE"
	IconBookmark    Icon = "BOOKMARK"
	IconStar        Icon = "STAR"
)
