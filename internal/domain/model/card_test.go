package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestPayloadWireFormat(t *testing.T) {
	b := NewCardBuilder("Deploy", "prod")
	b.AddSection("Summary")
	require.NoError(t, b.AddText("done"))
	require.NoError(t, b.AddDivider())
	require.NoError(t, b.AddImage("https://x/i.png", "icon"))
	require.NoError(t, b.AddKeyValue("c", KeyValueOptions{Icon: IconEmail, Multiline: true}))
	require.NoError(t, b.AddButton(ButtonOptions{Text: "Go", URL: "https://x"}))

	doc := marshalToMap(t, b.Build())

	cards, ok := doc["cards"].([]any)
	require.True(t, ok)
	require.Len(t, cards, 1)

	card := cards[0].(map[string]any)
	header := card["header"].(map[string]any)
	assert.Equal(t, "Deploy", header["title"])
	assert.Equal(t, "prod", header["subtitle"])

	sections := card["sections"].([]any)
	require.Len(t, sections, 1)
	section := sections[0].(map[string]any)
	assert.Equal(t, "Summary", section["header"])

	widgets := section["widgets"].([]any)
	require.Len(t, widgets, 5)

	// each widget object carries exactly its discriminating key
	assert.Equal(t, map[string]any{"text": "done"}, widgets[0].(map[string]any)["textParagraph"])
	assert.Equal(t, map[string]any{}, widgets[1].(map[string]any)["divider"])
	assert.Equal(t, map[string]any{"imageUrl": "https://x/i.png", "altText": "icon"}, widgets[2].(map[string]any)["image"])

	kv := widgets[3].(map[string]any)["keyValue"].(map[string]any)
	assert.Equal(t, "EMAIL", kv["icon"])
	assert.Equal(t, true, kv["contentMultiline"])
	_, hasButton := kv["button"]
	assert.False(t, hasButton)

	buttons := widgets[4].(map[string]any)["buttons"].([]any)
	require.Len(t, buttons, 1)
	textButton := buttons[0].(map[string]any)["textButton"].(map[string]any)
	assert.Equal(t, "Go", textButton["text"])
	onClick := textButton["onClick"].(map[string]any)
	openLink := onClick["openLink"].(map[string]any)
	assert.Equal(t, "https://x", openLink["url"])
}

func TestSectionHeaderOmittedWhenEmpty(t *testing.T) {
	b := NewCardBuilder("t", "s")
	b.AddSection("")
	require.NoError(t, b.AddText("x"))

	doc := marshalToMap(t, b.Build())
	section := doc["cards"].([]any)[0].(map[string]any)["sections"].([]any)[0].(map[string]any)
	_, hasHeader := section["header"]
	assert.False(t, hasHeader)
}

func TestWidgetVariantsAreExclusiveOnTheWire(t *testing.T) {
	b := NewCardBuilder("t", "s")
	b.AddSection("")
	require.NoError(t, b.AddText("x"))

	doc := marshalToMap(t, b.Build())
	widget := doc["cards"].([]any)[0].(map[string]any)["sections"].([]any)[0].(map[string]any)["widgets"].([]any)[0].(map[string]any)
	assert.Len(t, widget, 1)
}

func TestImageButtonWireFormat(t *testing.T) {
	b := NewCardBuilder("t", "s")
	b.AddSection("")
	require.NoError(t, b.AddButton(ButtonOptions{URL: "https://x", ImageURL: "https://x/i.png", Name: "Docs"}))

	doc := marshalToMap(t, b.Build())
	buttons := doc["cards"].([]any)[0].(map[string]any)["sections"].([]any)[0].(map[string]any)["widgets"].([]any)[0].(map[string]any)["buttons"].([]any)
	button := buttons[0].(map[string]any)

	_, hasText := button["textButton"]
	assert.False(t, hasText)

	imageButton := button["imageButton"].(map[string]any)
	assert.Equal(t, "Docs", imageButton["name"])
	assert.Equal(t, "https://x/i.png", imageButton["iconUrl"])
}
