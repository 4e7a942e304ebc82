package server

import (
	"fmt"

	"gchat-cardbot/internal/domain/model"
)

// CardRequest is the flat card description accepted by POST /v1/cards.
// Webhook, when set, overrides the server's configured webhook for this one
// delivery.
type CardRequest struct {
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Webhook  string           `json:"webhook,omitempty"`
	Sections []SectionRequest `json:"sections"`
}

type SectionRequest struct {
	Header  string          `json:"header,omitempty"`
	Widgets []WidgetRequest `json:"widgets"`
}

// WidgetRequest is a loosely-typed widget: Type selects the shape and the
// remaining fields apply per type.
type WidgetRequest struct {
	Type string `json:"type"`

	// text, decoratedText
	Text string `json:"text,omitempty"`

	// image, button
	URL      string `json:"url,omitempty"`
	AltText  string `json:"altText,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Name     string `json:"name,omitempty"`

	// keyValue
	Content     string `json:"content,omitempty"`
	TopLabel    string `json:"topLabel,omitempty"`
	BottomLabel string `json:"bottomLabel,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Multiline   bool   `json:"multiline,omitempty"`
	ButtonText  string `json:"buttonText,omitempty"`
	ButtonURL   string `json:"buttonUrl,omitempty"`

	// decoratedText
	StartIcon  string `json:"startIcon,omitempty"`
	EndIcon    string `json:"endIcon,omitempty"`
	OnClickURL string `json:"onClickUrl,omitempty"`
}

// DeliveryResponse echoes the webhook endpoint's answer back to the caller.
type DeliveryResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// BuildPayload assembles the request into a card payload via the builder, so
// the request surface enforces exactly the same invariants as direct builder
// use.
func (r CardRequest) BuildPayload() (model.Payload, error) {
	if len(r.Sections) == 0 {
		return model.Payload{}, fmt.Errorf("request needs at least one section")
	}

	builder := model.NewCardBuilder(r.Title, r.Subtitle)
	for si, section := range r.Sections {
		builder.AddSection(section.Header)
		for wi, widget := range section.Widgets {
			if err := appendWidget(builder, widget); err != nil {
				return model.Payload{}, fmt.Errorf("section %d widget %d: %w", si, wi, err)
			}
		}
	}
	return builder.Build(), nil
}

func appendWidget(builder *model.CardBuilder, w WidgetRequest) error {
	switch w.Type {
	case "text":
		return builder.AddText(w.Text)
	case "image":
		return builder.AddImage(w.ImageURL, w.AltText)
	case "divider":
		return builder.AddDivider()
	case "keyValue":
		return builder.AddKeyValue(w.Content, model.KeyValueOptions{
			TopLabel:    w.TopLabel,
			BottomLabel: w.BottomLabel,
			Icon:        model.Icon(w.Icon),
			Multiline:   w.Multiline,
			ButtonText:  w.ButtonText,
			ButtonURL:   w.ButtonURL,
		})
	case "decoratedText":
		return builder.AddDecoratedText(w.Text, model.DecoratedTextOptions{
			StartIcon:  model.Icon(w.StartIcon),
			EndIcon:    model.Icon(w.EndIcon),
			OnClickURL: w.OnClickURL,
		})
	case "button":
		return builder.AddButton(model.ButtonOptions{
			Text:     w.Text,
			URL:      w.URL,
			ImageURL: w.ImageURL,
			Name:     w.Name,
		})
	default:
		return fmt.Errorf("unknown widget type %q", w.Type)
	}
}
