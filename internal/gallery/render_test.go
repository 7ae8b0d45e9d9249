package gallery

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyCacheShowsPendingTiles(t *testing.T) {
	out, err := Render(testTree(), testCache(t), "Prototype Gallery")
	require.NoError(t, err)

	html := string(out)
	assert.Equal(t, 3, strings.Count(html, `class="tile pending"`), "all three items render as pending")
	assert.NotContains(t, html, `class="tile deployed"`)
	assert.Contains(t, html, "var INDEX = []")
}

func TestRenderDeployedTileLinksToCachedURL(t *testing.T) {
	out, err := Render(testTree(), testCache(t, "welcome"), "Prototype Gallery")
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `href="https://welcome.surge.sh"`)
	assert.Equal(t, 1, strings.Count(html, `class="tile deployed"`))
	assert.Equal(t, 2, strings.Count(html, `class="tile pending"`))
	assert.Contains(t, html, `"id":"welcome"`)
	assert.NotContains(t, html, `"id":"tutorial"`, "pending items stay out of the search index")
}

func TestRenderCategoryHeadingsInScanOrder(t *testing.T) {
	out, err := Render(testTree(), testCache(t), "Prototype Gallery")
	require.NoError(t, err)

	html := string(out)
	onboarding := strings.Index(html, "<h2>Onboarding</h2>")
	checkout := strings.Index(html, "<h2>Checkout</h2>")
	require.GreaterOrEqual(t, onboarding, 0)
	require.GreaterOrEqual(t, checkout, 0)
	assert.Less(t, onboarding, checkout)
}

func TestRenderIsDeterministic(t *testing.T) {
	tree := testTree()
	c := testCache(t, "welcome", "cart")

	a, err := Render(tree, c, "Prototype Gallery")
	require.NoError(t, err)
	b, err := Render(tree, c, "Prototype Gallery")
	require.NoError(t, err)

	assert.True(t, bytes.Equal(a, b), "identical inputs must render byte-identical output")
}
