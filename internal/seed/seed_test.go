package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/whattoeat/internal/domain"
	"github.com/pkordes/whattoeat/internal/seed"
)

func TestDefault(t *testing.T) {
	dishes := seed.Default()

	require.Len(t, dishes, 8)
	assert.Equal(t, "麻婆豆腐", dishes[0].Name)
	assert.Equal(t, []string{"辣", "中餐"}, dishes[0].Tags)
	assert.NotEmpty(t, dishes[0].ImageURL)
	assert.Equal(t, "越南河粉", dishes[7].Name)
}

func TestDefault_FreshIDsEachCall(t *testing.T) {
	a, b := seed.Default(), seed.Default()
	assert.NotEqual(t, a[0].ID, b[0].ID)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	dishes, err := seed.Load("")
	require.NoError(t, err)
	assert.Len(t, dishes, 8)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dishes.yaml")
	content := `
dishes:
  - name: 拉面
    tags: [面, 汤]
  - name: 披萨
    tags: [奶酪]
    image_url: https://example.com/pizza.jpg
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	dishes, err := seed.Load(path)

	require.NoError(t, err)
	require.Len(t, dishes, 2)
	assert.Equal(t, "拉面", dishes[0].Name)
	assert.Equal(t, []string{"面", "汤"}, dishes[0].Tags)
	assert.Equal(t, "", dishes[0].ImageURL)
	assert.Equal(t, "https://example.com/pizza.jpg", dishes[1].ImageURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := seed.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Empty(t *testing.T) {
	dishes, err := seed.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, dishes)
}

func TestParse_MissingName(t *testing.T) {
	_, err := seed.Parse([]byte("dishes:\n  - tags: [辣]\n"))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "dishes[0]")
}

func TestParse_UnknownField(t *testing.T) {
	_, err := seed.Parse([]byte("dishes:\n  - name: x\n    price: 3\n"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
