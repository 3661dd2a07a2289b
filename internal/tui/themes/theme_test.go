package themes

import (
	"testing"

	"github.com/Veraticus/sideline/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, "dark", GetTheme("dark").Name)
	assert.Equal(t, "light", GetTheme("light").Name)
	assert.Equal(t, "light", GetTheme("neon").Name, "unknown names use the default")

	assert.Equal(t, "dark", GetTheme(model.Settings{DarkTheme: true}.ThemeName()).Name)
	assert.NotEqual(t, Light.Background, Dark.Background)
}

func TestGetSportIcon(t *testing.T) {
	for _, label := range model.CategoryLabels {
		_, ok := SportIcons[label]
		assert.True(t, ok, "no icon for %s", label)
	}
	assert.Equal(t, "🏅", GetSportIcon("Chess"))
}
