package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Nishu0/xicon-cli/internal/icon"
	"github.com/Nishu0/xicon-cli/internal/manifest"
	"github.com/Nishu0/xicon-cli/internal/pipeline"
	"github.com/Nishu0/xicon-cli/internal/profile"
	"github.com/spf13/cobra"
)

var (
	buildOutDir      string
	buildProfile     string
	buildProfileFile string
	buildColor       string
	buildBackground  string
	buildStyle       string
	buildFrom        string
	buildWorkers     int
	buildSizes       []int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the icon set and write the manifest",
	Long: `Renders every size the profile asks for, plus grayscale disabled
variants where the profile wants them. With --from the icons are built
from a logo image (png, jpg, gif, bmp, tiff, webp); otherwise the
artwork is procedural (--style solid or ring).

Output files are named icon-<size>.png and icon-<size>-disabled.png.
XICON_OUT and XICON_PROFILE (from the environment or a .env file)
provide defaults for --out and --profile.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "./icons", "output directory")
	buildCmd.Flags().StringVarP(&buildProfile, "profile", "p", "chrome-extension", "target profile")
	buildCmd.Flags().StringVar(&buildProfileFile, "profile-file", "", "custom profile YAML (overrides --profile)")
	buildCmd.Flags().StringVarP(&buildColor, "color", "c", "#1D9BF0", "fill colour as #rrggbb")
	buildCmd.Flags().StringVar(&buildBackground, "bg", "#FFFFFF", "background colour as #rrggbb")
	buildCmd.Flags().StringVarP(&buildStyle, "style", "s", "solid", "procedural style: solid or ring")
	buildCmd.Flags().StringVar(&buildFrom, "from", "", "logo image to fit instead of procedural artwork")
	buildCmd.Flags().IntVarP(&buildWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	buildCmd.Flags().IntSliceVar(&buildSizes, "sizes", nil, "custom sizes (overrides profile)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()

	// Environment defaults lose to explicit flags.
	if !cmd.Flags().Changed("out") {
		if v := os.Getenv("XICON_OUT"); v != "" {
			buildOutDir = v
		}
	}
	if !cmd.Flags().Changed("profile") {
		if v := os.Getenv("XICON_PROFILE"); v != "" {
			buildProfile = v
		}
	}

	absOutput, err := filepath.Abs(buildOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	// Load profile.
	var prof profile.Profile
	if buildProfileFile != "" {
		prof, err = profile.Load(buildProfileFile)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
	} else {
		prof = profile.Get(buildProfile)
	}
	if buildSizes != nil {
		prof.Sizes = buildSizes
		if err := prof.Validate(); err != nil {
			return err
		}
	}

	fill, err := icon.ParseColor(buildColor)
	if err != nil {
		return fmt.Errorf("parse --color: %w", err)
	}
	bg, err := icon.ParseColor(buildBackground)
	if err != nil {
		return fmt.Errorf("parse --bg: %w", err)
	}
	if buildStyle != "solid" && buildStyle != "ring" {
		return fmt.Errorf("unknown style %q (want solid or ring)", buildStyle)
	}

	logVerbose("output:  %s", absOutput)
	logVerbose("profile: %s (sizes=%v, disabled=%v, padding=%.2f)",
		prof.Name, prof.Sizes, prof.Disabled, prof.Padding)
	logVerbose("colour:  %s on %s, style %s", fill.Hex(), bg.Hex(), buildStyle)

	// Create output dir.
	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Run pipeline.
	p := pipeline.New(pipeline.Config{
		OutDir:     absOutput,
		Profile:    prof,
		Color:      fill,
		Background: bg,
		Style:      buildStyle,
		SourcePath: buildFrom,
		Workers:    buildWorkers,
		Verbose:    verbose,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	// Write manifest.
	manifestPath := filepath.Join(absOutput, "xicon.manifest.json")
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBuildReport(m, time.Since(start))
	return nil
}

func printBuildReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║              xicon build complete                ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	stats := m.Stats
	fmt.Printf("  Icons:       %d\n", stats.TotalIcons)
	fmt.Printf("  Total size:  %s\n", formatBytes(stats.TotalBytes))
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:     %d\n", m.BuildInfo.Workers)
	}
	fmt.Println()

	if len(m.Icons) > 0 {
		fmt.Println("  Output files:")
		for _, ic := range m.Icons {
			fmt.Printf("    %-26s %5dpx  %9s  %s\n",
				ic.Path, ic.Size, formatBytes(ic.Bytes), ic.Hash[:8])
		}
		fmt.Println()
	}

	data, _ := json.Marshal(m)
	fmt.Printf("  Manifest:    xicon.manifest.json (%s)\n", formatBytes(int64(len(data))))
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
