package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"curved/bezier"
	"curved/curve"
	"curved/editor"
	"curved/export"
	"curved/terminal"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive terminal editor (default when no export mode is given)")
		exportMode  = flag.String("export", "", "Export mode: png, png8, png16, gray, hald, cube, preview (png uses the configured export_bit_depth)")
		outputFile  = flag.String("o", "", "Output file (default derived from the export mode)")
		lutWidth    = flag.Int("width", 0, "LUT width for 1-D exports (overrides settings)")
		haldSize    = flag.Int("hald-size", 16, "Cube edge length for hald and cube exports")
		channelName = flag.String("channel", "red", "Channel for the gray export: red, green, blue")
		samplePos   = flag.Float64("sample", -1, "Print the RGB response at the given x and exit")
		help        = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [curves.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A per-channel tone-curve editor that samples piecewise cubic Bézier\n")
		fmt.Fprintf(os.Stderr, "curves into lookup tables.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                          # edit fresh identity curves\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s curves.json              # edit a saved file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -export png16 curves.json -o lut.png\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -export cube -hald-size 33 curves.json\n", os.Args[0])
	}
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	settings, dark, err := terminal.LoadRC()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: bad rc file ignored: %v\n", err)
	}

	set := curve.DefaultSet()
	filename := flag.Arg(0)
	if filename != "" {
		loaded, loadedSettings, err := export.LoadCurves(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", filename, err)
			os.Exit(1)
		}
		set = loaded
		settings = loadedSettings
	}
	if *lutWidth > 0 {
		settings.LUTWidth = *lutWidth
	}

	sampler := bezier.SetSampler{Set: set}

	if *samplePos >= 0 {
		x := *samplePos
		fmt.Printf("%.6f %.6f %.6f\n",
			sampler.Sample(curve.Red, x),
			sampler.Sample(curve.Green, x),
			sampler.Sample(curve.Blue, x))
		return
	}

	if *exportMode != "" && !*interactive {
		if err := runExport(*exportMode, *outputFile, set, sampler, settings, *haldSize, *channelName, dark); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ed := editor.New(terminal.CellMapper{X0: 2, Y0: 1, W: 76, H: 20})
	if filename != "" {
		if err := ed.Replace(set); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if err := terminal.Run(ed, terminal.Options{
		Filename: filename,
		Settings: settings,
		Dark:     dark,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(mode, out string, set curve.Set, sampler export.Sampler, settings export.Settings, haldSize int, channelName string, dark bool) error {
	if out == "" {
		out = defaultOutput(mode)
	}

	switch mode {
	case "png", "png8", "png16":
		img, err := export.CombinedRGB1D(sampler, settings.LUTWidth, lutBitDepth(mode, settings))
		if err != nil {
			return err
		}
		if err := export.SavePNG(out, img); err != nil {
			return err
		}
	case "gray":
		ch, err := parseChannel(channelName)
		if err != nil {
			return err
		}
		img, err := export.SingleChannel1D(sampler, ch, settings.LUTWidth)
		if err != nil {
			return err
		}
		if err := export.SavePNG(out, img); err != nil {
			return err
		}
	case "hald":
		img, err := export.HALD3D(sampler, haldSize)
		if err != nil {
			return err
		}
		if err := export.SavePNG(out, img); err != nil {
			return err
		}
	case "cube":
		if err := export.SaveCube(out, sampler, haldSize, "curved tone curves"); err != nil {
			return err
		}
	case "preview":
		if err := export.SavePreviewPNG(out, set, curve.Red, 512, 512, dark); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown export mode %q", mode)
	}

	fmt.Printf("Wrote %s\n", out)
	return nil
}

// lutBitDepth resolves the bit depth for the combined RGB export: the
// explicit png8/png16 modes win, plain png follows the persisted
// export_bit_depth setting.
func lutBitDepth(mode string, settings export.Settings) int {
	switch mode {
	case "png8":
		return 8
	case "png16":
		return 16
	default:
		return settings.ExportBitDepth
	}
}

func defaultOutput(mode string) string {
	switch mode {
	case "cube":
		return "curves.cube"
	case "png":
		return "curves_lut.png"
	default:
		return "curves_" + mode + ".png"
	}
}

func parseChannel(name string) (curve.ChannelID, error) {
	switch strings.ToLower(name) {
	case "red", "r":
		return curve.Red, nil
	case "green", "g":
		return curve.Green, nil
	case "blue", "b":
		return curve.Blue, nil
	default:
		return curve.Red, fmt.Errorf("unknown channel %q", name)
	}
}
