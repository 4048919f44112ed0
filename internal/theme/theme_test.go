package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetThemeByName(t *testing.T) {
	for _, name := range AvailableThemes() {
		if name == SystemName {
			continue
		}
		thm := GetTheme(name)
		assert.Equal(t, name, thm.Name)
		assert.NotEmpty(t, thm.Accent)
		assert.NotEmpty(t, thm.TextFg)
	}
}

func TestGetThemeSystemResolves(t *testing.T) {
	thm := GetTheme(SystemName)
	assert.Contains(t, []string{DraculaName, DraculaLightName}, thm.Name)
}

func TestAvailableThemes(t *testing.T) {
	names := AvailableThemes()
	assert.Equal(t, SystemName, names[0])
	assert.Contains(t, names, NordName)
	assert.True(t, IsKnown(GruvboxLightName))
	assert.True(t, IsKnown(SystemName))
	assert.False(t, IsKnown("solarized-neon"))
}

func TestLightFlag(t *testing.T) {
	assert.True(t, CatppuccinLatte().Light)
	assert.False(t, Nord().Light)
}

func TestExtensionColor(t *testing.T) {
	assert.NotEqual(t, ExtensionColor("js", true), ExtensionColor("js", false))
	assert.NotEmpty(t, ExtensionColor("blade.php", false))
	assert.Empty(t, string(ExtensionColor("zig", false)))
}
