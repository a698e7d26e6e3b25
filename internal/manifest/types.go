package manifest

// Manifest is the top-level output of an xicon build.
type Manifest struct {
	Version     int        `json:"version"`
	GeneratedAt string     `json:"generated_at"`
	Profile     string     `json:"profile"`
	Color       string     `json:"color"`            // fill colour as #rrggbb
	Source      string     `json:"source,omitempty"` // logo path for source-mode builds
	BuildInfo   *BuildInfo `json:"build_info,omitempty"`
	Icons       []Icon     `json:"icons"`
	Stats       Stats      `json:"stats"`
}

// BuildInfo captures build-time parameters for diagnostics.
type BuildInfo struct {
	Workers int `json:"workers"`
}

// Icon describes a single generated PNG file.
type Icon struct {
	Variant  string   `json:"variant"` // "normal" or "disabled"
	Size     int      `json:"size"`    // square edge in pixels
	Path     string   `json:"path"`    // relative to the manifest directory
	Bytes    int64    `json:"bytes"`   // file size on disk
	Hash     string   `json:"hash"`    // 16 hex chars of xxhash64
	AvgColor [3]uint8 `json:"avg_color"`
}

// Stats aggregates build metrics.
type Stats struct {
	TotalIcons int   `json:"total_icons"`
	TotalBytes int64 `json:"total_bytes"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
