package usecase

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gchat-cardbot/internal/domain/model"
)

type fakeProvider struct {
	results []model.CheckResult
	err     error
}

func (f *fakeProvider) CheckTargets(ctx context.Context, targets []model.Target) ([]model.CheckResult, error) {
	return f.results, f.err
}

type fakeSender struct {
	payload  model.Payload
	delivery model.Delivery
	err      error
	calls    int
}

func (f *fakeSender) Send(ctx context.Context, payload model.Payload, webhookURL string) (model.Delivery, error) {
	f.calls++
	f.payload = payload
	return f.delivery, f.err
}

type fakeWriter struct {
	text string
	err  error
}

func (f *fakeWriter) Compose(ctx context.Context, results []model.CheckResult) (string, error) {
	return f.text, f.err
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

func upResult(name string) model.CheckResult {
	return model.CheckResult{
		Target:  model.Target{Name: name, URL: "https://" + name + ".example"},
		Up:      true,
		Status:  200,
		Latency: 42 * time.Millisecond,
	}
}

func TestRunBuildsAndSendsCard(t *testing.T) {
	provider := &fakeProvider{results: []model.CheckResult{
		upResult("api"),
		{Target: model.Target{Name: "web", URL: "https://web.example"}, Err: "dial tcp: timeout"},
	}}
	sender := &fakeSender{delivery: model.Delivery{Status: http.StatusOK, Body: "{}"}}

	digest := NewStatusDigest(provider, nil, sender, nopLogger{}, StatusDigestConfig{
		Targets:      []model.Target{{Name: "api"}, {Name: "web"}},
		DashboardURL: "https://grafana.example/d/overview",
	})

	require.NoError(t, digest.Run(context.Background()))
	require.Equal(t, 1, sender.calls)

	card := sender.payload.Cards[0]
	assert.Equal(t, "Service Status", card.Header.Title)
	assert.Equal(t, "1/2 services up", card.Header.Subtitle)

	require.Len(t, card.Sections, 2)
	assert.Equal(t, "Summary", card.Sections[0].Header)
	assert.Equal(t, "Services", card.Sections[1].Header)

	// services section: one keyValue per target, then divider + dashboard button
	widgets := card.Sections[1].Widgets
	require.Len(t, widgets, 4)
	require.NotNil(t, widgets[0].KeyValue)
	assert.Equal(t, model.IconCheckCircle, widgets[0].KeyValue.Icon)
	assert.Equal(t, "api", widgets[0].KeyValue.TopLabel)
	require.NotNil(t, widgets[0].KeyValue.Button)

	require.NotNil(t, widgets[1].KeyValue)
	assert.NotEqual(t, model.IconCheckCircle, widgets[1].KeyValue.Icon)
	assert.Contains(t, widgets[1].KeyValue.Content, "unreachable")

	require.NotNil(t, widgets[2].Divider)
	require.Len(t, widgets[3].Buttons, 1)
	assert.Equal(t, "Open dashboard", widgets[3].Buttons[0].TextButton.Text)
}

func TestRunUsesWriterSummaryWhenAvailable(t *testing.T) {
	provider := &fakeProvider{results: []model.CheckResult{upResult("api")}}
	sender := &fakeSender{delivery: model.Delivery{Status: http.StatusOK}}
	writer := &fakeWriter{text: "Everything looks calm."}

	digest := NewStatusDigest(provider, writer, sender, nopLogger{}, StatusDigestConfig{})
	require.NoError(t, digest.Run(context.Background()))

	summary := sender.payload.Cards[0].Sections[0].Widgets[0]
	require.NotNil(t, summary.TextParagraph)
	assert.Equal(t, "Everything looks calm.", summary.TextParagraph.Text)
}

func TestRunFallsBackWhenWriterFails(t *testing.T) {
	provider := &fakeProvider{results: []model.CheckResult{upResult("api")}}
	sender := &fakeSender{delivery: model.Delivery{Status: http.StatusOK}}
	writer := &fakeWriter{err: fmt.Errorf("quota exceeded")}

	digest := NewStatusDigest(provider, writer, sender, nopLogger{}, StatusDigestConfig{})
	require.NoError(t, digest.Run(context.Background()))

	summary := sender.payload.Cards[0].Sections[0].Widgets[0]
	assert.Equal(t, "All monitored services are responding normally.", summary.TextParagraph.Text)
}

func TestRunPropagatesProviderError(t *testing.T) {
	provider := &fakeProvider{err: fmt.Errorf("dns down")}
	sender := &fakeSender{}

	digest := NewStatusDigest(provider, nil, sender, nopLogger{}, StatusDigestConfig{})
	require.Error(t, digest.Run(context.Background()))
	assert.Zero(t, sender.calls)
}

func TestRunTreatsWebhookRejectionAsError(t *testing.T) {
	provider := &fakeProvider{results: []model.CheckResult{upResult("api")}}
	sender := &fakeSender{delivery: model.Delivery{Status: http.StatusForbidden, Body: "nope"}}

	digest := NewStatusDigest(provider, nil, sender, nopLogger{}, StatusDigestConfig{})
	err := digest.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
