/*
Package report assembles the fixed section sequence of an investment property
analysis and renders it to PDF bytes.

The builder computes every label and color up front while constructing the
section model; the renderer only draws what the model says. Nothing here
touches the filesystem or the network.
*/
package report

import (
	"strconv"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"property-analyzer/src/pkg/config"
)

/*
RGB is an 8-bit color triple for PDF text and fill colors.
*/
type RGB struct {
	R int
	G int
	B int
}

/*
Theme carries the brand strings and the color roles used by the builder and
renderer. It is constructed once at startup and passed in explicitly; the
core pipeline never reads ambient process state.
*/
type Theme struct {
	BrandName    string
	BrandTagline string
	ReportTitle  string
	Website      string
	FooterLines  []string
	Disclaimer   string

	Navy      RGB
	Accent    RGB
	Success   RGB
	Warning   RGB
	Danger    RGB
	DarkGray  RGB
	LightGray RGB
	White     RGB
}

/*
Config is the JSON-facing shape of the report section in the config file.
Colors are hex strings like "#1a3e5c"; empty fields keep their defaults.
*/
type Config struct {
	BrandName    string   `json:"brand_name,omitempty"`
	BrandTagline string   `json:"brand_tagline,omitempty"`
	ReportTitle  string   `json:"report_title,omitempty"`
	Website      string   `json:"website,omitempty"`
	FooterLines  []string `json:"footer_lines,omitempty"`
	Disclaimer   string   `json:"disclaimer,omitempty"`

	NavyHex    string `json:"navy_hex,omitempty"`
	AccentHex  string `json:"accent_hex,omitempty"`
	SuccessHex string `json:"success_hex,omitempty"`
	WarningHex string `json:"warning_hex,omitempty"`
	DangerHex  string `json:"danger_hex,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		BrandName:    "THE EDMUND BOGEN TEAM",
		BrandTagline: "AT DOUGLAS ELLIMAN REAL ESTATE",
		ReportTitle:  "INVESTMENT PROPERTY ANALYSIS",
		Website:      "www.bogenhomes.com",
		FooterLines: []string{
			"Compliments of The Edmund Bogen Team at Douglas Elliman Real Estate",
			"From Palm Beach to Miami, we can help you find your next investment property.",
		},
		Disclaimer: "DISCLAIMER: This analysis is for informational purposes only. Actual results may vary. " +
			"Please consult with qualified professionals before making investment decisions.",
		NavyHex:    "#1a3e5c",
		AccentHex:  "#00a8e1",
		SuccessHex: "#28a745",
		WarningHex: "#ffc107",
		DangerHex:  "#dc3545",
	}
}

// create config with default values before config gets initialized
var Cfg Config = DefaultValueConfig() // this one we use to access config values from anywhere

/*
If local Config is provided - use it. Replace all missing values with default ones.

If not provided - just use defaultConfig.
*/
func InitializeConfig(localConfig *Config) {
	if localConfig == nil {
		tl.Log(tl.Info, palette.Purple, "%s config is %s, keeping %s", "report", "not provided", "default report config")
		return
	}

	defaultConfig := DefaultValueConfig()

	Cfg = *localConfig

	tl.ApplyDefaults(&Cfg, defaultConfig, func(field string, defVal any) {
		tl.Log(
			tl.Info, palette.Purple,
			"%s field is %s in %s configuration. Using default value: %v",
			field, "missing", config.GetPackageName(), tl.PrettyForStderr(defVal),
		)
	})

	tl.Log(tl.Info, palette.Green, "%s config was %s, using %s", "report", "provided", "local report config")
}

/*
ThemeFromConfig resolves the active Config into a renderer-ready Theme.

Unparseable hex colors fall back to the brand defaults so a bad config file
degrades the palette, never the request.
*/
func ThemeFromConfig(cfg Config) Theme {
	defaults := DefaultValueConfig()

	return Theme{
		BrandName:    cfg.BrandName,
		BrandTagline: cfg.BrandTagline,
		ReportTitle:  cfg.ReportTitle,
		Website:      cfg.Website,
		FooterLines:  cfg.FooterLines,
		Disclaimer:   cfg.Disclaimer,

		Navy:      parseHexColor(cfg.NavyHex, defaults.NavyHex),
		Accent:    parseHexColor(cfg.AccentHex, defaults.AccentHex),
		Success:   parseHexColor(cfg.SuccessHex, defaults.SuccessHex),
		Warning:   parseHexColor(cfg.WarningHex, defaults.WarningHex),
		Danger:    parseHexColor(cfg.DangerHex, defaults.DangerHex),
		DarkGray:  RGB{R: 51, G: 51, B: 51},
		LightGray: RGB{R: 244, G: 244, B: 244},
		White:     RGB{R: 255, G: 255, B: 255},
	}
}

/*
parseHexColor parses "#rrggbb" into an RGB, using fallbackHex when the value
is malformed. The fallback strings are compile-time constants and valid.
*/
func parseHexColor(hex string, fallbackHex string) RGB {
	color, ok := tryParseHexColor(hex)
	if ok {
		return color
	}
	color, _ = tryParseHexColor(fallbackHex)
	return color
}

func tryParseHexColor(hex string) (color RGB, ok bool) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(trimmed) != 6 {
		return color, false
	}

	red, redErr := strconv.ParseUint(trimmed[0:2], 16, 8)
	green, greenErr := strconv.ParseUint(trimmed[2:4], 16, 8)
	blue, blueErr := strconv.ParseUint(trimmed[4:6], 16, 8)
	if redErr != nil || greenErr != nil || blueErr != nil {
		return color, false
	}

	return RGB{R: int(red), G: int(green), B: int(blue)}, true
}
