package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Nishu0/xicon-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a built icon set",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for manifest inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, "xicon.manifest.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	printStats(&m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Profile:          %s\n", m.Profile)
	fmt.Printf("  Colour:           %s\n", m.Color)
	if m.Source != "" {
		fmt.Printf("  Source logo:      %s\n", m.Source)
	}
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:          %d\n", m.BuildInfo.Workers)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total icons:      %d\n", s.TotalIcons)
	fmt.Printf("  Total size:       %s\n", formatBytes(s.TotalBytes))
	if s.TotalIcons > 0 {
		fmt.Printf("  Average icon:     %s\n", formatBytes(s.TotalBytes/int64(s.TotalIcons)))
	}
	fmt.Println()

	// Per-variant breakdown.
	variantStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, ic := range m.Icons {
		vs := variantStats[ic.Variant]
		vs.count++
		vs.bytes += ic.Bytes
		variantStats[ic.Variant] = vs
	}
	fmt.Println("  Variant breakdown:")
	for _, v := range []string{"normal", "disabled"} {
		if vs, ok := variantStats[v]; ok {
			fmt.Printf("    %-8s  %4d files  %s\n", v, vs.count, formatBytes(vs.bytes))
		}
	}
	fmt.Println()

	// Per-size breakdown.
	sizeBytes := map[int]int64{}
	sizeCount := map[int]int{}
	for _, ic := range m.Icons {
		sizeBytes[ic.Size] += ic.Bytes
		sizeCount[ic.Size]++
	}
	var sizes []int
	for sz := range sizeBytes {
		sizes = append(sizes, sz)
	}
	sort.Ints(sizes)
	fmt.Println("  Size breakdown:")
	for _, sz := range sizes {
		fmt.Printf("    %5dpx  %2d icons  %s\n", sz, sizeCount[sz], formatBytes(sizeBytes[sz]))
	}
	fmt.Println()

	// Warnings.
	var warnings []string
	if len(m.Icons) == 0 {
		warnings = append(warnings, "manifest lists no icons")
	}
	seenPaths := map[string]bool{}
	for _, ic := range m.Icons {
		if ic.Hash == "" {
			warnings = append(warnings, fmt.Sprintf("icon %q missing hash", ic.Path))
		}
		if seenPaths[ic.Path] {
			warnings = append(warnings, fmt.Sprintf("duplicate path %q", ic.Path))
		}
		seenPaths[ic.Path] = true
	}
	if len(warnings) > 0 {
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
		fmt.Println()
	}
}
