package export

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Export directory layout, relative to baseDir.
const (
	ExcelDir    = "excel"
	AnalysisDir = "analysis"
	FixLogDir   = "fixed_logs"
)

// EnsureDirs creates the export directory tree under baseDir and returns
// baseDir. An empty baseDir defaults to "exports".
func EnsureDirs(baseDir string) (string, error) {
	if baseDir == "" {
		baseDir = "exports"
	}
	for _, sub := range []string{ExcelDir, AnalysisDir, FixLogDir} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0o755); err != nil {
			return "", err
		}
	}
	return baseDir, nil
}

// slugify reduces a free-form name to a filesystem-safe stem: letters and
// digits kept, everything else collapsed to single underscores, capped at
// 30 characters.
func slugify(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	slug := strings.Trim(b.String(), "_")
	if len(slug) > 30 {
		slug = slug[:30]
	}
	if slug == "" {
		slug = "export"
	}
	return slug
}

// timestampedName builds the "<slug>_<YYYYMMDD_HHMMSS>" filename stem.
func timestampedName(name string, now time.Time) string {
	return slugify(name) + "_" + now.Format("20060102_150405")
}
