// Package theme provides the colour palettes used by the TUI.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines all colours used in the application UI.
type Theme struct {
	Name       string
	Light      bool
	Accent     lipgloss.Color
	AccentFg   lipgloss.Color // text on Accent background
	AccentDim  lipgloss.Color
	Border     lipgloss.Color
	BorderDim  lipgloss.Color
	MutedFg    lipgloss.Color
	TextFg     lipgloss.Color
	SuccessFg  lipgloss.Color
	WarnFg     lipgloss.Color
	ErrorFg    lipgloss.Color
	Cyan       lipgloss.Color
}

// Theme names.
const (
	SystemName          = "system"
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	NordName            = "nord"
	GruvboxDarkName     = "gruvbox-dark"
	GruvboxLightName    = "gruvbox-light"
	CatppuccinLatteName = "catppuccin-latte"
)

var palettes = map[string]func() *Theme{
	DraculaName:         Dracula,
	DraculaLightName:    DraculaLight,
	NordName:            Nord,
	GruvboxDarkName:     GruvboxDark,
	GruvboxLightName:    GruvboxLight,
	CatppuccinLatteName: CatppuccinLatte,
}

// Dracula returns the Dracula theme (dark background, vibrant colours).
func Dracula() *Theme {
	return &Theme{
		Name:      DraculaName,
		Accent:    lipgloss.Color("#BD93F9"),
		AccentFg:  lipgloss.Color("#282A36"),
		AccentDim: lipgloss.Color("#44475A"),
		Border:    lipgloss.Color("#6272A4"),
		BorderDim: lipgloss.Color("#44475A"),
		MutedFg:   lipgloss.Color("#6272A4"),
		TextFg:    lipgloss.Color("#F8F8F2"),
		SuccessFg: lipgloss.Color("#50FA7B"),
		WarnFg:    lipgloss.Color("#FFB86C"),
		ErrorFg:   lipgloss.Color("#FF5555"),
		Cyan:      lipgloss.Color("#8BE9FD"),
	}
}

// DraculaLight returns the Dracula theme adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Name:      DraculaLightName,
		Light:     true,
		Accent:    lipgloss.Color("#c6dbe5"),
		AccentFg:  lipgloss.Color("#24292F"),
		AccentDim: lipgloss.Color("#F3E8FF"),
		Border:    lipgloss.Color("#D0D7DE"),
		BorderDim: lipgloss.Color("#E8E8E8"),
		MutedFg:   lipgloss.Color("#6E7781"),
		TextFg:    lipgloss.Color("#24292F"),
		SuccessFg: lipgloss.Color("#059669"),
		WarnFg:    lipgloss.Color("#D97706"),
		ErrorFg:   lipgloss.Color("#DC2626"),
		Cyan:      lipgloss.Color("#0891B2"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Name:      NordName,
		Accent:    lipgloss.Color("#88C0D0"),
		AccentFg:  lipgloss.Color("#2E3440"),
		AccentDim: lipgloss.Color("#3B4252"),
		Border:    lipgloss.Color("#4C566A"),
		BorderDim: lipgloss.Color("#434C5E"),
		MutedFg:   lipgloss.Color("#81A1C1"),
		TextFg:    lipgloss.Color("#E5E9F0"),
		SuccessFg: lipgloss.Color("#A3BE8C"),
		WarnFg:    lipgloss.Color("#EBCB8B"),
		ErrorFg:   lipgloss.Color("#BF616A"),
		Cyan:      lipgloss.Color("#88C0D0"),
	}
}

// GruvboxDark returns the Gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Name:      GruvboxDarkName,
		Accent:    lipgloss.Color("#FABD2F"),
		AccentFg:  lipgloss.Color("#282828"),
		AccentDim: lipgloss.Color("#3C3836"),
		Border:    lipgloss.Color("#504945"),
		BorderDim: lipgloss.Color("#3C3836"),
		MutedFg:   lipgloss.Color("#928374"),
		TextFg:    lipgloss.Color("#EBDBB2"),
		SuccessFg: lipgloss.Color("#B8BB26"),
		WarnFg:    lipgloss.Color("#FABD2F"),
		ErrorFg:   lipgloss.Color("#FB4934"),
		Cyan:      lipgloss.Color("#83A598"),
	}
}

// GruvboxLight returns the Gruvbox light theme.
func GruvboxLight() *Theme {
	return &Theme{
		Name:      GruvboxLightName,
		Light:     true,
		Accent:    lipgloss.Color("#D79921"),
		AccentFg:  lipgloss.Color("#FBF1C7"),
		AccentDim: lipgloss.Color("#E0CFA9"),
		Border:    lipgloss.Color("#D5C4A1"),
		BorderDim: lipgloss.Color("#C0B58A"),
		MutedFg:   lipgloss.Color("#7C6F64"),
		TextFg:    lipgloss.Color("#3C3836"),
		SuccessFg: lipgloss.Color("#79740E"),
		WarnFg:    lipgloss.Color("#D79921"),
		ErrorFg:   lipgloss.Color("#9D0006"),
		Cyan:      lipgloss.Color("#427B58"),
	}
}

// CatppuccinLatte returns the Catppuccin Latte theme.
func CatppuccinLatte() *Theme {
	return &Theme{
		Name:      CatppuccinLatteName,
		Light:     true,
		Accent:    lipgloss.Color("#1E66F5"),
		AccentFg:  lipgloss.Color("#FFFFFF"),
		AccentDim: lipgloss.Color("#CCD0DA"),
		Border:    lipgloss.Color("#9CA0B0"),
		BorderDim: lipgloss.Color("#BCC0CC"),
		MutedFg:   lipgloss.Color("#6C6F85"),
		TextFg:    lipgloss.Color("#4C4F69"),
		SuccessFg: lipgloss.Color("#40A02B"),
		WarnFg:    lipgloss.Color("#DF8E1D"),
		ErrorFg:   lipgloss.Color("#D20F39"),
		Cyan:      lipgloss.Color("#04A5E5"),
	}
}

// GetTheme returns a theme by name. "system" and unknown names resolve to
// Dracula or Dracula Light depending on the terminal background.
func GetTheme(name string) *Theme {
	if build, ok := palettes[name]; ok {
		return build()
	}
	if lipgloss.HasDarkBackground() {
		return Dracula()
	}
	return DraculaLight()
}

// IsKnown reports whether name is a selectable theme.
func IsKnown(name string) bool {
	if name == SystemName {
		return true
	}
	_, ok := palettes[name]
	return ok
}

// AvailableThemes returns the selectable theme names, "system" first.
func AvailableThemes() []string {
	names := make([]string, 0, len(palettes)+1)
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{SystemName}, names...)
}

// ExtensionColor returns a language colour for an extension (no leading dot),
// or "" when the extension has no dedicated colour.
func ExtensionColor(ext string, light bool) lipgloss.Color {
	switch ext {
	case "html", "htm":
		return lipgloss.Color("#E34C26")
	case "css", "scss", "sass":
		return lipgloss.Color("#569CD6")
	case "js", "mjs":
		if light {
			return lipgloss.Color("#D2B400")
		}
		return lipgloss.Color("#F1E05A")
	case "ts", "tsx":
		return lipgloss.Color("#3178C6")
	case "jsx":
		return lipgloss.Color("#61DAFB")
	case "rs":
		return lipgloss.Color("#DEA584")
	case "json", "toml", "xml":
		return lipgloss.Color("#CF9178")
	case "py":
		return lipgloss.Color("#3572A5")
	case "md":
		return lipgloss.Color("#969696")
	case "c", "cpp", "h":
		return lipgloss.Color("#596CD1")
	case "java":
		return lipgloss.Color("#B07219")
	case "php":
		return lipgloss.Color("#777BB3")
	case "blade.php":
		return lipgloss.Color("#F05340")
	default:
		return ""
	}
}
