package pipeline

import (
	"fmt"
	"image"
	"os"
	"runtime"
	"sync"

	"github.com/Nishu0/xicon-cli/internal/icon"
	"github.com/Nishu0/xicon-cli/internal/manifest"
	"github.com/Nishu0/xicon-cli/internal/profile"
)

// Config holds all parameters for a build pipeline run.
type Config struct {
	OutDir     string
	Profile    profile.Profile
	Color      icon.RGB // fill colour for procedural artwork
	Background icon.RGB // canvas colour icons are flattened onto
	Style      string   // procedural style: "solid" or "ring"
	SourcePath string   // logo image to fit; procedural artwork when empty
	Workers    int
	Verbose    bool
}

// Pipeline orchestrates icon generation.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{cfg: cfg}
}

// iconJob identifies one output file: a pixel size plus a variant.
type iconJob struct {
	Size    int
	Variant string // "normal" or "disabled"
}

// Run executes the full build pipeline and returns the manifest.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	// Step 1: Expand the profile into the job list.
	sizes := p.cfg.Profile.EffectiveSizes()
	if len(sizes) == 0 {
		return nil, fmt.Errorf("profile %q has no sizes", p.cfg.Profile.Name)
	}
	variants := []string{"normal"}
	if p.cfg.Profile.Disabled {
		variants = append(variants, "disabled")
	}

	jobs := make([]iconJob, 0, len(sizes)*len(variants))
	for _, s := range sizes {
		for _, v := range variants {
			jobs = append(jobs, iconJob{Size: s, Variant: v})
		}
	}

	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[xicon] rendering %d icons (%d sizes, %d variants)\n",
			len(jobs), len(sizes), len(variants))
	}

	// Step 2: Decode the source logo once, shared by all jobs.
	var src image.Image
	if p.cfg.SourcePath != "" {
		var err error
		src, err = LoadSource(p.cfg.SourcePath)
		if err != nil {
			return nil, fmt.Errorf("source: %w", err)
		}
		if p.cfg.Verbose {
			b := src.Bounds()
			fmt.Fprintf(os.Stderr, "[xicon] source: %s (%dx%d)\n",
				p.cfg.SourcePath, b.Dx(), b.Dy())
		}
	}

	// Step 3: Render icons in parallel.
	results := make([]renderResult, len(jobs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, job := range jobs {
		wg.Add(1)
		go func(idx int, j iconJob) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = p.renderIcon(j, src)

			if p.cfg.Verbose && results[idx].err == nil {
				fmt.Fprintf(os.Stderr, "[xicon] done: %s (%d bytes)\n",
					results[idx].icon.Path, results[idx].icon.Bytes)
			}
		}(i, job)
	}
	wg.Wait()

	// Step 4: Collect results into manifest.
	m := manifest.New(p.cfg.Profile.Name)
	m.Color = p.cfg.Color.Hex()
	m.Source = p.cfg.SourcePath

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Icons = append(m.Icons, r.icon)
	}

	// Report errors but don't fail the entire build for partial failures.
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[xicon] error: %v\n", e)
		}
		if len(errs) == len(jobs) {
			return nil, fmt.Errorf("all %d icons failed to render", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[xicon] warning: %d of %d icons had errors\n",
			len(errs), len(jobs))
	}

	m.BuildInfo = &manifest.BuildInfo{Workers: p.cfg.Workers}
	m.SortIcons()
	m.ComputeStats()
	return m, nil
}
