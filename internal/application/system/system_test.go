package system

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/kingsandpigs/internal/domain/entity"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/asset"
	"github.com/younwookim/kingsandpigs/internal/infrastructure/config"
)

const testFloorY = 400

func testConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	return cfg
}

// testSheets serves generated sheets for every path
func testSheets() *asset.Loader {
	return asset.NewFSLoader(nil).WithPlaceholders(asset.NewPlaceholderSet(color.Black))
}

// newTestPlayer returns a grounded player at x
func newTestPlayer(t *testing.T, x int) *entity.Player {
	t.Helper()
	cfg := testConfig(t)
	anims, err := BuildAnimations(testSheets(), cfg.Sprites, KindPlayer)
	require.NoError(t, err)
	p, err := entity.NewPlayer(x, 0, entity.DefaultPlayerStats(), anims)
	require.NoError(t, err)
	p.Land(testFloorY)
	return p
}

// newTestEnemy returns a grounded pig at x
func newTestEnemy(t *testing.T, x int, stats entity.EnemyStats) *entity.Enemy {
	t.Helper()
	cfg := testConfig(t)
	anims, err := BuildAnimations(testSheets(), cfg.Sprites, "pig")
	require.NoError(t, err)
	e, err := entity.NewEnemy(x, 0, stats, anims)
	require.NoError(t, err)
	e.Land(testFloorY)
	return e
}
