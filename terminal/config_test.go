package terminal

import (
	"testing"

	"curved/export"
)

func boolp(v bool) *bool { return &v }

func TestApplyRCDefaults(t *testing.T) {
	settings, dark, err := applyRC(export.DefaultSettings(), RC{})
	if err != nil {
		t.Fatalf("applyRC: %v", err)
	}
	if settings != export.DefaultSettings() || dark {
		t.Errorf("empty rc changed settings: %+v dark=%v", settings, dark)
	}
}

func TestApplyRCOverrides(t *testing.T) {
	rc := RC{
		DarkMode:       boolp(true),
		LUTWidth:       1024,
		ExportBitDepth: 16,
		PreviewRGB:     boolp(false),
		DrawInactive:   boolp(true),
		ClampHandles:   boolp(false),
	}
	settings, dark, err := applyRC(export.DefaultSettings(), rc)
	if err != nil {
		t.Fatalf("applyRC: %v", err)
	}
	if !dark {
		t.Error("dark_mode not applied")
	}
	want := export.Settings{LUTWidth: 1024, ExportBitDepth: 16, PreviewRGB: false, DrawInactive: true, ClampHandles: false}
	if settings != want {
		t.Errorf("settings = %+v, want %+v", settings, want)
	}
}

func TestApplyRCIgnoresBadValues(t *testing.T) {
	rc := RC{LUTWidth: -5, ExportBitDepth: 12}
	settings, _, err := applyRC(export.DefaultSettings(), rc)
	if err != nil {
		t.Fatalf("applyRC: %v", err)
	}
	if settings.LUTWidth != 256 || settings.ExportBitDepth != 8 {
		t.Errorf("bad rc values applied: %+v", settings)
	}
}
