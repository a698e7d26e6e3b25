package cmd

import (
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/Nishu0/xicon-cli/internal/hasher"
	"github.com/Nishu0/xicon-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <out_dir_or_manifest>",
	Short: "Validate an xicon manifest and check referenced files",
	Long: `Checks the manifest schema and every icon it references: the file
must exist, match its recorded size and content hash, and decode as a
PNG of the recorded dimensions.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	info, err := os.Stat(manifestPath)
	if err != nil {
		return fmt.Errorf("stat %s: %w", manifestPath, err)
	}
	if info.IsDir() {
		manifestPath = filepath.Join(manifestPath, "xicon.manifest.json")
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	baseDir := filepath.Dir(manifestPath)
	errors := validateManifest(&m, baseDir)

	if len(errors) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d icons — all files present, hashes match\n", m.Stats.TotalIcons)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	// Check version.
	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}
	if len(m.Icons) == 0 {
		errs = append(errs, "manifest lists no icons")
	}

	// Check each icon.
	seenPaths := map[string]bool{}
	for i, ic := range m.Icons {
		if ic.Variant != "normal" && ic.Variant != "disabled" {
			errs = append(errs, fmt.Sprintf("icon[%d]: unknown variant %q", i, ic.Variant))
		}
		if ic.Size <= 0 {
			errs = append(errs, fmt.Sprintf("icon[%d]: invalid size %d", i, ic.Size))
		}
		if len(ic.Hash) != hasher.HashLen {
			errs = append(errs, fmt.Sprintf("icon[%d]: malformed hash %q", i, ic.Hash))
		}
		if ic.Path == "" {
			errs = append(errs, fmt.Sprintf("icon[%d]: missing path", i))
			continue
		}

		// Check duplicate paths.
		if seenPaths[ic.Path] {
			errs = append(errs, fmt.Sprintf("icon[%d]: duplicate path %q", i, ic.Path))
		}
		seenPaths[ic.Path] = true

		errs = append(errs, validateIconFile(baseDir, ic)...)
	}

	// Verify stats consistency.
	var totalBytes int64
	for _, ic := range m.Icons {
		totalBytes += ic.Bytes
	}
	if m.Stats.TotalIcons != len(m.Icons) {
		errs = append(errs, fmt.Sprintf("stats.total_icons mismatch: %d != %d",
			m.Stats.TotalIcons, len(m.Icons)))
	}
	if m.Stats.TotalBytes != totalBytes {
		errs = append(errs, fmt.Sprintf("stats.total_bytes mismatch: %d != %d",
			m.Stats.TotalBytes, totalBytes))
	}

	return errs
}

// validateIconFile checks one referenced file on disk: size, content
// hash, and that it decodes as a PNG of the recorded dimensions.
func validateIconFile(baseDir string, ic manifest.Icon) []string {
	var errs []string

	f, err := os.Open(filepath.Join(baseDir, ic.Path))
	if err != nil {
		return append(errs, fmt.Sprintf("icon %q: file not found", ic.Path))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return append(errs, fmt.Sprintf("icon %q: stat: %v", ic.Path, err))
	}
	if ic.Bytes > 0 && info.Size() != ic.Bytes {
		errs = append(errs, fmt.Sprintf("icon %q: size mismatch: manifest=%d, disk=%d",
			ic.Path, ic.Bytes, info.Size()))
	}

	if len(ic.Hash) == hasher.HashLen {
		got, err := hasher.ContentHashReader(f)
		if err != nil {
			return append(errs, fmt.Sprintf("icon %q: hash: %v", ic.Path, err))
		}
		if got != ic.Hash {
			errs = append(errs, fmt.Sprintf("icon %q: hash mismatch: manifest=%s, disk=%s",
				ic.Path, ic.Hash, got))
		}
	}

	// Decode with the stdlib as an independent check of our encoder.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return append(errs, fmt.Sprintf("icon %q: seek: %v", ic.Path, err))
	}
	img, err := png.Decode(f)
	if err != nil {
		return append(errs, fmt.Sprintf("icon %q: not a decodable png: %v", ic.Path, err))
	}
	if b := img.Bounds(); b.Dx() != ic.Size || b.Dy() != ic.Size {
		errs = append(errs, fmt.Sprintf("icon %q: dimensions: manifest=%dpx, decoded=%dx%d",
			ic.Path, ic.Size, b.Dx(), b.Dy()))
	}

	return errs
}
