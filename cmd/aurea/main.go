package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aureamidi/aurea"
	"github.com/aureamidi/aurea/cmd"
	"github.com/aureamidi/aurea/gomidi"
	"github.com/aureamidi/aurea/report"
	"github.com/aureamidi/aurea/version"
)

func main() {
	style := flag.String("style", aurea.DefaultStyle, "Music style. See -l for the available styles.")
	scale := flag.String("scale", aurea.DefaultScale, "Scale. See -l for the available scales.")
	root := flag.Int("root", 60, "Root note as a MIDI key (21-108); 60 is middle C.")
	tempo := flag.Int("tempo", 120, "Tempo in BPM (30-300).")
	duration := flag.Int("d", 60, "Target duration in seconds (10-300).")
	seed := flag.Int64("seed", 0, "Random seed. 0 seeds from the current time; any other value makes the output reproducible.")
	outPath := flag.String("o", "", "Output file or directory. By default a golden_<style>_<scale>_<timestamp>.mid file is written to the working directory.")
	yamlOut := flag.Bool("y", false, "Write the companion metadata file as YAML instead of text.")
	noInfo := flag.Bool("q", false, "Do not write the companion metadata file.")
	list := flag.Bool("l", false, "List the available styles, scales, rhythms and instruments, then exit.")
	play := flag.Bool("p", false, "Play the generated melody on a MIDI output port after writing it.")
	port := flag.String("port", "", "MIDI output port name prefix for -p. Empty takes the first port.")
	versionFlag := flag.Bool("v", false, "Print version.")
	help := flag.Bool("h", false, "Show help.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *list {
		printCatalogs()
		os.Exit(0)
	}
	if *tempo < 30 || *tempo > 300 {
		fmt.Fprintf(os.Stderr, "tempo should be between 30 and 300 BPM\n")
		os.Exit(1)
	}
	if *duration < 10 || *duration > 300 {
		fmt.Fprintf(os.Stderr, "duration should be between 10 and 300 seconds\n")
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	composer := aurea.NewComposer(rand.New(rand.NewSource(*seed)))
	comp, err := composer.Compose(aurea.Params{
		Style:    *style,
		Scale:    *scale,
		Root:     *root,
		Tempo:    *tempo,
		Duration: *duration,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not compose: %v\n", err)
		os.Exit(1)
	}

	path := outputPath(*outPath, comp.Metadata.Style, comp.Metadata.Scale)
	if err := gomidi.WriteFile(comp, path); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %v (%v notes", path, comp.Metadata.Analysis.TotalNotes)
	if iv := comp.Metadata.Analysis.Intervals; iv != nil {
		fmt.Printf(", %.1f%% golden intervals", iv.GoldenPercentage)
	}
	fmt.Println(")")

	if !*noInfo {
		info := report.Info{
			Filename:  filepath.Base(path),
			Generated: time.Now(),
			Metadata:  comp.Metadata,
		}
		infoPath, contents, err := renderInfo(path, info, *yamlOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(infoPath, contents, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "could not write %v: %v\n", infoPath, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %v\n", infoPath)
	}

	if *play {
		player := cmd.NewPlayer()
		defer player.Close()
		if err := player.Play(comp, *port); err != nil {
			fmt.Fprintf(os.Stderr, "playback failed: %v\n", err)
			os.Exit(1)
		}
	}
}

func renderInfo(midPath string, info report.Info, asYaml bool) (string, []byte, error) {
	base := strings.TrimSuffix(midPath, filepath.Ext(midPath))
	if asYaml {
		contents, err := report.YAML(info)
		return base + "_info.yml", contents, err
	}
	contents, err := report.Text(info)
	return base + "_info.txt", contents, err
}

// outputPath resolves the -o flag: empty means a timestamped name in the
// working directory, a directory means a timestamped name inside it, and
// anything else is taken as the file name, with the .mid extension enforced.
func outputPath(out, style, scale string) string {
	name := fmt.Sprintf("golden_%s_%s_%d.mid", style, scale, time.Now().Unix())
	if out == "" {
		return name
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, name)
	}
	if !strings.HasSuffix(out, ".mid") {
		out += ".mid"
	}
	return out
}

func printCatalogs() {
	fmt.Println("Styles:")
	for _, name := range aurea.StyleNames() {
		s, _ := aurea.StyleByName(name)
		fmt.Printf("  %-12s %d-%d BPM, %s rhythm, scales %v\n",
			name, s.TempoRange[0], s.TempoRange[1], s.Rhythm, s.Scales)
	}
	fmt.Println("Scales:")
	for _, name := range aurea.ScaleNames() {
		s, _ := aurea.ScaleByName(name)
		fmt.Printf("  %-17s %-36v %s\n", name, s.Intervals, s.Characteristic)
	}
	fmt.Println("Rhythms:")
	for _, name := range aurea.RhythmNames() {
		p, _ := aurea.RhythmPattern(name)
		fmt.Printf("  %-12s %v\n", name, p)
	}
	fmt.Println("Progressions:")
	for _, name := range aurea.ProgressionNames() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("Instruments:")
	for _, category := range aurea.InstrumentCategories() {
		patches, _ := aurea.InstrumentsInCategory(category)
		fmt.Printf("  %s:\n", category)
		for patch := 1; patch <= 131; patch++ {
			if name, ok := patches[patch]; ok {
				fmt.Printf("    %3d %s\n", patch, name)
			}
		}
	}
}

func printUsage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Aurea generates golden-ratio shaped MIDI compositions.\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
