package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoPayload(t *testing.T) {
	payload, err := demoPayload()
	require.NoError(t, err)
	require.Len(t, payload.Cards, 1)

	card := payload.Cards[0]
	assert.Equal(t, "Deployment", card.Header.Title)
	require.Len(t, card.Sections, 1)

	widgets := card.Sections[0].Widgets
	require.Len(t, widgets, 3)
	require.NotNil(t, widgets[0].TextParagraph)
	require.NotNil(t, widgets[1].KeyValue)
	require.Len(t, widgets[2].Buttons, 1)
}
