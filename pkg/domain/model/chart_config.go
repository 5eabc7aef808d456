package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// ChartConfig represents the appearance of the stacked bar chart
type ChartConfig struct {
	Title         string `yaml:"title"`
	ApprovedLabel string `yaml:"approved_label"`
	RejectedLabel string `yaml:"rejected_label"`
	ApprovedColor string `yaml:"approved_color"` // hex, e.g. "#4bc0c0"
	RejectedColor string `yaml:"rejected_color"`
	Width         int    `yaml:"width"`  // pixels
	Height        int    `yaml:"height"` // pixels
}

// DefaultChartConfig returns the built-in chart appearance
func DefaultChartConfig() *ChartConfig {
	return &ChartConfig{
		Title:         "Visa Processing Statistics",
		ApprovedLabel: "Approved Visas",
		RejectedLabel: "Rejected Visas",
		ApprovedColor: "#4bc0c0",
		RejectedColor: "#ff6384",
		Width:         900,
		Height:        500,
	}
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// WithDefaults returns a copy where every zero field is taken from DefaultChartConfig
func (c *ChartConfig) WithDefaults() *ChartConfig {
	def := DefaultChartConfig()
	if c == nil {
		return def
	}

	result := *c
	if result.Title == "" {
		result.Title = def.Title
	}
	if result.ApprovedLabel == "" {
		result.ApprovedLabel = def.ApprovedLabel
	}
	if result.RejectedLabel == "" {
		result.RejectedLabel = def.RejectedLabel
	}
	if result.ApprovedColor == "" {
		result.ApprovedColor = def.ApprovedColor
	}
	if result.RejectedColor == "" {
		result.RejectedColor = def.RejectedColor
	}
	if result.Width == 0 {
		result.Width = def.Width
	}
	if result.Height == 0 {
		result.Height = def.Height
	}
	return &result
}

// Validate validates the chart configuration
func (c *ChartConfig) Validate() error {
	for name, color := range map[string]string{
		"approved_color": c.ApprovedColor,
		"rejected_color": c.RejectedColor,
	} {
		if color != "" && !hexColorPattern.MatchString(color) {
			return goerr.New("color must be a #rrggbb hex value",
				goerr.V("field", name),
				goerr.V("color", color))
		}
	}

	if c.Width < 0 || c.Height < 0 {
		return goerr.New("chart size must not be negative",
			goerr.V("width", c.Width),
			goerr.V("height", c.Height))
	}

	return nil
}
