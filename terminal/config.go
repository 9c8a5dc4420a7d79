package terminal

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"curved/export"
)

// RC holds the user preferences read from ~/.curvedrc. Zero values fall
// back to the tool defaults, so a partial file is fine.
type RC struct {
	DarkMode       *bool `yaml:"dark_mode"`
	LUTWidth       int   `yaml:"lut_width"`
	ExportBitDepth int   `yaml:"export_bit_depth"`
	PreviewRGB     *bool `yaml:"preview_rgb_combined"`
	DrawInactive   *bool `yaml:"draw_inactive"`
	ClampHandles   *bool `yaml:"clamp_handles"`
}

// rcFileName is looked up in the user's home directory.
const rcFileName = ".curvedrc"

// LoadRC reads the rc file and folds it over the default settings.
// A missing file is not an error; a malformed one is.
func LoadRC() (export.Settings, bool, error) {
	settings := export.DefaultSettings()
	dark := false

	home, err := os.UserHomeDir()
	if err != nil {
		return settings, dark, nil
	}
	data, err := os.ReadFile(filepath.Join(home, rcFileName))
	if err != nil {
		return settings, dark, nil
	}

	var rc RC
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return settings, dark, err
	}
	return applyRC(settings, rc)
}

func applyRC(settings export.Settings, rc RC) (export.Settings, bool, error) {
	dark := false
	if rc.DarkMode != nil {
		dark = *rc.DarkMode
	}
	if rc.LUTWidth > 0 {
		settings.LUTWidth = rc.LUTWidth
	}
	if rc.ExportBitDepth == 8 || rc.ExportBitDepth == 16 {
		settings.ExportBitDepth = rc.ExportBitDepth
	}
	if rc.PreviewRGB != nil {
		settings.PreviewRGB = *rc.PreviewRGB
	}
	if rc.DrawInactive != nil {
		settings.DrawInactive = *rc.DrawInactive
	}
	if rc.ClampHandles != nil {
		settings.ClampHandles = *rc.ClampHandles
	}
	return settings, dark, nil
}
