package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overlayEntries() []Entry {
	return []Entry{
		{ID: "welcome", Name: "Welcome", Category: "onboarding", URL: "https://welcome.surge.sh"},
		{ID: "tutorial", Name: "Tutorial", Category: "onboarding", URL: "https://tutorial.surge.sh"},
		{ID: "cart", Name: "Cart", Category: "checkout", URL: "https://cart.surge.sh"},
	}
}

func TestOverlayOpensWithAllEntries(t *testing.T) {
	o := NewOverlay(overlayEntries())

	assert.False(t, o.IsOpen())
	assert.Nil(t, o.Results())

	o.Open()
	assert.True(t, o.IsOpen())
	assert.Len(t, o.Results(), 3)
	assert.Equal(t, 0, o.Cursor())
}

func TestOverlayTypeRefiltersAndResetsCursor(t *testing.T) {
	o := NewOverlay(overlayEntries())
	o.Open()
	o.Move(2)
	require.Equal(t, 2, o.Cursor())

	o.Type("onboarding")
	assert.Len(t, o.Results(), 2)
	assert.Equal(t, 0, o.Cursor())
}

func TestOverlayMoveClampsToBounds(t *testing.T) {
	o := NewOverlay(overlayEntries())
	o.Open()

	o.Move(-5)
	assert.Equal(t, 0, o.Cursor())

	o.Move(10)
	assert.Equal(t, 2, o.Cursor())
}

func TestOverlaySelectNavigatesAndCloses(t *testing.T) {
	o := NewOverlay(overlayEntries())
	o.Open()
	o.Type("tutorial")

	url, ok := o.Select()
	require.True(t, ok)
	assert.Equal(t, "https://tutorial.surge.sh", url)
	assert.False(t, o.IsOpen())
}

func TestOverlaySelectWithNoResults(t *testing.T) {
	o := NewOverlay(overlayEntries())
	o.Open()
	o.Type("zzz")

	_, ok := o.Select()
	assert.False(t, ok)
	assert.True(t, o.IsOpen(), "overlay stays open when nothing matched")
}

func TestOverlayTypeWhileClosedIsNoop(t *testing.T) {
	o := NewOverlay(overlayEntries())
	o.Type("welcome")
	assert.False(t, o.IsOpen())
	assert.Nil(t, o.Results())
}
