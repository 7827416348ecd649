package manifest

// Manifest records one exticons generate run.
type Manifest struct {
	Version     int             `json:"version"`
	GeneratedAt string          `json:"generated_at"`
	Set         string          `json:"set"`
	Root        string          `json:"root"`
	Icons       map[string]Icon `json:"icons"` // keyed by raster target path
	Stats       Stats           `json:"stats"`
}

// Icon describes one generated SVG. Path is relative to the manifest root;
// Hash is the xxhash64 of the file; Fits records whether the label's
// estimated width stays within the canvas.
type Icon struct {
	Path  string `json:"path"`
	Size  int    `json:"size"`
	Label string `json:"label"`
	Bytes int64  `json:"bytes"`
	Hash  string `json:"hash"`
	Fits  bool   `json:"label_fits"`
}

// Stats aggregates run metrics.
type Stats struct {
	TotalIcons int   `json:"total_icons"`
	TotalBytes int64 `json:"total_bytes"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1

// FileName is the manifest's name inside the output root.
const FileName = "exticons.manifest.json"
