package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"gchat-cardbot/internal/domain/model"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print an illustrative card payload as indented JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := demoPayload()
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// demoPayload builds a small deployment card demonstrating the builder API.
func demoPayload() (model.Payload, error) {
	builder := model.NewCardBuilder("Deployment", "Production release ✅")
	summary := builder.AddSection("Summary")
	if err := builder.AddText("Version 2.14.3 was deployed without errors.", summary); err != nil {
		return model.Payload{}, err
	}
	if err := builder.AddKeyValue("All systems nominal", model.KeyValueOptions{
		TopLabel: "Status",
		Icon:     model.IconCheckCircle,
	}, summary); err != nil {
		return model.Payload{}, err
	}
	if err := builder.AddButton(model.ButtonOptions{
		Text: "View pipeline",
		URL:  "https://example.com/pipeline",
	}); err != nil {
		return model.Payload{}, err
	}
	return builder.Build(), nil
}
