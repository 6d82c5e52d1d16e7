package highlight

import (
	"path/filepath"
	"strings"
)

// DetectLanguage returns the Chroma language identifier for a note path.
// Markdown is the common case; plain text and config formats round it out.
func DetectLanguage(path string) string {
	languageMap := map[string]string{
		".md":       "markdown",
		".markdown": "markdown",
		".txt":      "text",
		".json":     "json",
		".yaml":     "yaml",
		".yml":      "yaml",
		".toml":     "toml",
		".ini":      "ini",
		".csv":      "text",
		".log":      "text",
		".sh":       "bash",
		".go":       "go",
		".py":       "python",
	}

	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageMap[ext]; ok {
		return lang
	}

	return "text" // Default fallback
}
