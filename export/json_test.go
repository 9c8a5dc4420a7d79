package export

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"curved/curve"
)

// curvySet returns a set with a non-trivial red channel so round trips
// exercise interior nodes and every alignment mode.
func curvySet() curve.Set {
	s := curve.DefaultSet()
	s[curve.Red] = []curve.Node{
		{Main: curve.Point{X: 0, Y: 0}, In: curve.Point{X: 0, Y: 0}, Out: curve.Point{X: 0.2, Y: 0.1}, Align: curve.Free},
		{Main: curve.Point{X: 0.5, Y: 0.6}, In: curve.Point{X: 0.4, Y: 0.5}, Out: curve.Point{X: 0.6, Y: 0.7}, Align: curve.Mirrored},
		{Main: curve.Point{X: 1, Y: 1}, In: curve.Point{X: 0.7, Y: 0.7}, Out: curve.Point{X: 1, Y: 1}, Align: curve.Aligned},
	}
	return s
}

func TestMarshalRoundTrip(t *testing.T) {
	want := curvySet()
	settings := Settings{LUTWidth: 1024, ExportBitDepth: 16, PreviewRGB: false, DrawInactive: true, ClampHandles: false}

	data, err := MarshalCurves(want, settings)
	if err != nil {
		t.Fatalf("MarshalCurves: %v", err)
	}
	got, gotSettings, err := UnmarshalCurves(data)
	if err != nil {
		t.Fatalf("UnmarshalCurves: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("curves did not round trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(settings, gotSettings); diff != "" {
		t.Errorf("settings did not round trip (-want +got):\n%s", diff)
	}
}

func TestMarshalWritesFormatVersion(t *testing.T) {
	data, err := MarshalCurves(curve.DefaultSet(), DefaultSettings())
	if err != nil {
		t.Fatalf("MarshalCurves: %v", err)
	}
	if !strings.Contains(string(data), `"file_format_version": "1.1"`) {
		t.Error("marshaled document lacks the format version")
	}
}

func TestMarshalRejectsMissingChannel(t *testing.T) {
	s := curve.DefaultSet()
	delete(s, curve.Blue)
	if _, err := MarshalCurves(s, DefaultSettings()); err == nil {
		t.Error("MarshalCurves accepted a set with a missing channel")
	}
}

const (
	nodeStart = `{"main":[0,0],"in":[0,0],"out":[0.3,0.3],"align":0}`
	nodeEnd   = `{"main":[1,1],"in":[0.7,0.7],"out":[1,1],"align":0}`
)

// docWith builds a minimal document whose three channels all carry the
// given node list.
func docWith(nodes string) []byte {
	arr := "[" + nodes + "]"
	return []byte(`{"file_format_version":"1.1","channels":{"RED":` + arr + `,"GREEN":` + arr + `,"BLUE":` + arr + `}}`)
}

func TestUnmarshalRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"not json", []byte("{"), "parse"},
		{"no channels", []byte(`{"file_format_version":"1.1"}`), "no channels"},
		{"short point", docWith(`{"main":[0.5],"in":[0,0],"out":[0,0],"align":0}` + "," + nodeEnd), "parse"},
		{"long point", docWith(`{"main":[0,0,0],"in":[0,0],"out":[0,0],"align":0}` + "," + nodeEnd), "parse"},
		{"missing point", docWith(`{"in":[0,0],"out":[0.3,0.3],"align":0}` + "," + nodeEnd), "malformed point"},
		{"missing align", docWith(`{"main":[0,0],"in":[0,0],"out":[0.3,0.3]}` + "," + nodeEnd), "missing alignment"},
		{"align out of range", docWith(`{"main":[0,0],"in":[0,0],"out":[0.3,0.3],"align":7}` + "," + nodeEnd), "out of range"},
		{"single node", docWith(nodeStart), "at least 2"},
		{"unpinned endpoint", docWith(`{"main":[0.2,0],"in":[0.2,0],"out":[0.3,0.3],"align":0}` + "," + nodeEnd), "not pinned"},
		{"unsorted anchors", docWith(nodeStart + "," + `{"main":[0.8,0.5],"in":[0.8,0.5],"out":[0.8,0.5],"align":0}` + "," + `{"main":[0.4,0.5],"in":[0.4,0.5],"out":[0.4,0.5],"align":0}` + "," + nodeEnd), "strictly increasing"},
	}
	for _, tc := range cases {
		set, _, err := UnmarshalCurves(tc.data)
		if err == nil {
			t.Errorf("%s: load accepted", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
		if set != nil {
			t.Errorf("%s: failed load returned partial state", tc.name)
		}
	}
}

func TestUnmarshalMissingChannelFailsWhole(t *testing.T) {
	data, err := MarshalCurves(curve.DefaultSet(), DefaultSettings())
	if err != nil {
		t.Fatalf("MarshalCurves: %v", err)
	}
	broken := strings.Replace(string(data), `"GREEN"`, `"GREEM"`, 1)
	set, _, err := UnmarshalCurves([]byte(broken))
	if err == nil || !strings.Contains(err.Error(), "GREEN") {
		t.Errorf("load = %v, want error naming the missing GREEN channel", err)
	}
	if set != nil {
		t.Error("failed load returned partial state")
	}
}

func TestUnmarshalDefaultsSettingsWhenAbsent(t *testing.T) {
	_, settings, err := UnmarshalCurves(docWith(nodeStart + "," + nodeEnd))
	if err != nil {
		t.Fatalf("UnmarshalCurves: %v", err)
	}
	if diff := cmp.Diff(DefaultSettings(), settings); diff != "" {
		t.Errorf("settings without a settings block (-want +got):\n%s", diff)
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := t.TempDir() + "/curves.json"
	want := curvySet()
	if err := SaveCurves(path, want, DefaultSettings()); err != nil {
		t.Fatalf("SaveCurves: %v", err)
	}
	got, _, err := LoadCurves(path)
	if err != nil {
		t.Fatalf("LoadCurves: %v", err)
	}
	if !got.Equal(want) {
		t.Error("file round trip changed the curves")
	}
	if _, _, err := LoadCurves(path + ".missing"); err == nil {
		t.Error("loading a missing file succeeded")
	}
}
