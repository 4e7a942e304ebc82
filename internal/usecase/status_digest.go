package usecase

import (
	"context"
	"fmt"
	"time"

	"gchat-cardbot/internal/domain/model"
	"gchat-cardbot/internal/domain/ports"
)

// downIcon is not in the documented icon set; the card schema accepts open
// strings, so newer icons pass through untouched.
const downIcon = model.Icon("CLOCK")

// StatusDigest probes the configured targets, assembles a status card and
// delivers it to the chat webhook.
type StatusDigest struct {
	provider     ports.StatusProvider
	writer       ports.SummaryWriter
	sender       ports.CardSender
	logger       ports.Logger
	targets      []model.Target
	dashboardURL string
	title        string
}

// StatusDigestConfig controls what the digest reports on.
type StatusDigestConfig struct {
	Targets      []model.Target
	DashboardURL string
	Title        string
}

// NewStatusDigest constructs a StatusDigest use case. writer may be nil; the
// summary section then falls back to a computed one-liner.
func NewStatusDigest(
	provider ports.StatusProvider,
	writer ports.SummaryWriter,
	sender ports.CardSender,
	logger ports.Logger,
	cfg StatusDigestConfig,
) *StatusDigest {
	title := cfg.Title
	if title == "" {
		title = "Service Status"
	}
	return &StatusDigest{
		provider:     provider,
		writer:       writer,
		sender:       sender,
		logger:       logger,
		targets:      cfg.Targets,
		dashboardURL: cfg.DashboardURL,
		title:        title,
	}
}

// Run executes one probe-build-send cycle.
func (d *StatusDigest) Run(ctx context.Context) error {
	start := time.Now()
	d.logger.Info(ctx, "starting status digest", "targets", len(d.targets))

	results, err := d.provider.CheckTargets(ctx, d.targets)
	if err != nil {
		d.logger.Error(ctx, "failed to check targets", "error", err)
		return err
	}

	payload, err := d.buildCard(ctx, results)
	if err != nil {
		d.logger.Error(ctx, "failed to build card", "error", err)
		return err
	}

	delivery, err := d.sender.Send(ctx, payload, "")
	if err != nil {
		d.logger.Error(ctx, "failed to send card", "error", err)
		return err
	}
	if delivery.Status < 200 || delivery.Status >= 300 {
		d.logger.Warn(ctx, "webhook rejected card", "status", delivery.Status, "body", delivery.Body)
		return fmt.Errorf("webhook returned status %d", delivery.Status)
	}

	d.logger.Info(ctx, "status digest completed", "duration", time.Since(start))
	return nil
}

// buildCard lays the digest out as: Summary (narrative), Services (one
// key-value per target) and a dashboard button when a dashboard is configured.
func (d *StatusDigest) buildCard(ctx context.Context, results []model.CheckResult) (model.Payload, error) {
	up := 0
	for _, r := range results {
		if r.Up {
			up++
		}
	}

	builder := model.NewCardBuilder(d.title, fmt.Sprintf("%d/%d services up", up, len(results)))

	summary := builder.AddSection("Summary")
	if err := builder.AddText(d.composeSummary(ctx, results, up), summary); err != nil {
		return model.Payload{}, err
	}

	services := builder.AddSection("Services")
	for _, r := range results {
		if err := builder.AddKeyValue(statusContent(r), keyValueFor(r), services); err != nil {
			return model.Payload{}, err
		}
	}

	if d.dashboardURL != "" {
		if err := builder.AddDivider(services); err != nil {
			return model.Payload{}, err
		}
		if err := builder.AddButton(model.ButtonOptions{Text: "Open dashboard", URL: d.dashboardURL}); err != nil {
			return model.Payload{}, err
		}
	}

	return builder.Build(), nil
}

func (d *StatusDigest) composeSummary(ctx context.Context, results []model.CheckResult, up int) string {
	if d.writer != nil {
		if text, err := d.writer.Compose(ctx, results); err == nil && text != "" {
			return text
		} else if err != nil {
			d.logger.Warn(ctx, "summary writer failed, using fallback", "error", err)
		}
	}

	if up == len(results) {
		return "All monitored services are responding normally."
	}
	return fmt.Sprintf("%d of %d monitored services are degraded or unreachable.", len(results)-up, len(results))
}

func statusContent(r model.CheckResult) string {
	if r.Err != "" {
		return fmt.Sprintf("unreachable: %s", r.Err)
	}
	return fmt.Sprintf("HTTP %d in %s", r.Status, r.Latency.Round(time.Millisecond))
}

func keyValueFor(r model.CheckResult) model.KeyValueOptions {
	opts := model.KeyValueOptions{
		TopLabel: r.Target.Name,
		Icon:     model.IconCheckCircle,
	}
	if !r.Up {
		opts.Icon = downIcon
	}
	if r.PageTitle != "" {
		opts.BottomLabel = r.PageTitle
	}
	if r.Target.URL != "" {
		opts.ButtonText = "Open"
		opts.ButtonURL = r.Target.URL
	}
	return opts
}
