// Package config loads the lazycollect configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/chmouel/lazycollect/internal/log"
	"github.com/chmouel/lazycollect/internal/models"
	"github.com/chmouel/lazycollect/internal/theme"
	"gopkg.in/yaml.v3"
)

// Export modes.
const (
	ExportSingle   = "single"   // one concatenated text blob
	ExportSeparate = "separate" // copy the selected files into a directory
)

// AppConfig defines the lazycollect configuration options.
type AppConfig struct {
	// Root is the project directory to scan. It is never read from YAML.
	Root             string `yaml:"-"`
	Categories       []models.Category
	IgnoreDirs       []string
	OutputFilename   string
	Exclude          []string // doublestar patterns matched against relative paths
	SkipHidden       bool     // skip dot files and directories, except .env
	RespectGitignore bool
	MaxFileSize      int64 // bytes, 0 means unlimited
	AutoRefresh      bool
	Theme            string
	ShowIcons        bool
	DebugLog         string
	ExportMode       string
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Categories:     models.DefaultCategories(),
		IgnoreDirs:     models.DefaultIgnoreDirs(),
		OutputFilename: models.DefaultOutputFilename,
		Exclude:        []string{},
		Theme:          theme.SystemName,
		ShowIcons:      true,
		ExportMode:     ExportSingle,
	}
}

// OutputPath returns the absolute location of the output file.
func (c *AppConfig) OutputPath() string {
	if filepath.IsAbs(c.OutputFilename) {
		return c.OutputFilename
	}
	return filepath.Join(c.Root, c.OutputFilename)
}

// OutputRel returns the output file relative to Root, slash separated.
// It returns false when the output lives outside the project.
func (c *AppConfig) OutputRel() (string, bool) {
	if c.Root == "" || c.OutputFilename == "" {
		return "", false
	}
	out := c.OutputPath()
	if !isPathWithin(c.Root, out) {
		return "", false
	}
	rel, err := filepath.Rel(filepath.Clean(c.Root), filepath.Clean(out))
	if err != nil || rel == "." {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// normalizeList converts a YAML scalar or sequence to a trimmed string list.
// Scalars are split on commas so CLI overrides can carry lists.
func normalizeList(value any) []string {
	if value == nil {
		return []string{}
	}

	switch v := value.(type) {
	case string:
		out := []string{}
		for _, part := range strings.Split(v, ",") {
			if text := strings.TrimSpace(part); text != "" {
				out = append(out, text)
			}
		}
		return out
	case []any:
		out := []string{}
		for _, item := range v {
			if item == nil {
				continue
			}
			text := strings.TrimSpace(fmt.Sprintf("%v", item))
			if text != "" {
				out = append(out, text)
			}
		}
		return out
	}
	return []string{}
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int64) int64 {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return defaultVal
	case int:
		return int64(v)
	case int64:
		return v
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func parseCategories(value any) []models.Category {
	list, ok := value.([]any)
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var categories []models.Category
	for _, item := range list {
		itemMap, ok := item.(map[string]any)
		if !ok {
			continue
		}
		cat := models.Category{}
		if name, ok := itemMap["name"].(string); ok {
			cat.Name = strings.TrimSpace(name)
		}
		if color, ok := itemMap["color"].(string); ok {
			cat.Color = strings.TrimSpace(color)
		}
		for _, ext := range normalizeList(itemMap["extensions"]) {
			if norm := normalizeExtension(ext); norm != "" {
				cat.Extensions = append(cat.Extensions, norm)
			}
		}
		if cat.Name == "" || len(cat.Extensions) == 0 || seen[cat.Name] {
			continue
		}
		seen[cat.Name] = true
		categories = append(categories, cat)
	}
	return categories
}

func validPatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			log.Printf("config: ignoring invalid exclude pattern %q", p)
			continue
		}
		out = append(out, p)
	}
	return out
}

// apply overlays the keys present in data onto the configuration.
func (c *AppConfig) apply(data map[string]any) {
	if _, ok := data["categories"]; ok {
		if cats := parseCategories(data["categories"]); len(cats) > 0 {
			c.Categories = cats
		}
	}
	if _, ok := data["ignore_dirs"]; ok {
		c.IgnoreDirs = normalizeList(data["ignore_dirs"])
	}
	if _, ok := data["exclude"]; ok {
		c.Exclude = validPatterns(normalizeList(data["exclude"]))
	}
	if output, ok := data["output_filename"].(string); ok {
		if output = strings.TrimSpace(output); output != "" {
			c.OutputFilename = output
		}
	}
	if debugLog, ok := data["debug_log"].(string); ok {
		if debugLog = strings.TrimSpace(debugLog); debugLog != "" {
			c.DebugLog = debugLog
		}
	}
	if themeName, ok := data["theme"].(string); ok {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			c.Theme = normalized
		}
	}
	if mode, ok := data["export_mode"].(string); ok {
		mode = strings.ToLower(strings.TrimSpace(mode))
		if mode == ExportSingle || mode == ExportSeparate {
			c.ExportMode = mode
		}
	}

	c.SkipHidden = coerceBool(data["skip_hidden"], c.SkipHidden)
	c.RespectGitignore = coerceBool(data["respect_gitignore"], c.RespectGitignore)
	c.AutoRefresh = coerceBool(data["auto_refresh"], c.AutoRefresh)
	c.ShowIcons = coerceBool(data["show_icons"], c.ShowIcons)
	c.MaxFileSize = coerceInt(data["max_file_size"], c.MaxFileSize)
	if c.MaxFileSize < 0 {
		c.MaxFileSize = 0
	}
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	cfg.apply(data)
	return cfg
}

var overridableKeys = map[string]bool{
	"ignore_dirs":       true,
	"exclude":           true,
	"output_filename":   true,
	"debug_log":         true,
	"theme":             true,
	"export_mode":       true,
	"skip_hidden":       true,
	"respect_gitignore": true,
	"auto_refresh":      true,
	"show_icons":        true,
	"max_file_size":     true,
}

// ApplyCLIOverrides applies repeated "key=value" overrides from the command line.
// List values are comma separated.
func (c *AppConfig) ApplyCLIOverrides(overrides []string) error {
	data := make(map[string]any, len(overrides))
	for _, override := range overrides {
		key, value, ok := strings.Cut(override, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid override %q, expected key=value", override)
		}
		if !overridableKeys[key] {
			return fmt.Errorf("unknown config key %q", key)
		}
		data[key] = value
	}
	c.apply(data)
	return nil
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LoadConfig reads the application configuration from a YAML file.
// A missing file yields the defaults. An explicit configPath must reside
// inside the lazycollect config directory.
func LoadConfig(configPath string) (*AppConfig, error) {
	configBase := filepath.Clean(filepath.Join(getConfigDir(), "lazycollect"))

	var paths []string
	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		if !isPathWithin(configBase, absPath) {
			return DefaultConfig(), fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	for _, path := range paths {
		// #nosec G304 -- path is constrained to the config directory
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return DefaultConfig(), fmt.Errorf("failed to read %s: %w", path, err)
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
		}
		log.Printf("config: loaded %s", path)
		return parseConfig(yamlData), nil
	}

	return DefaultConfig(), nil
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

func isPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if theme.IsKnown(name) {
		return name
	}
	return ""
}
