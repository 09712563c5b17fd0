package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrnamentCountsAndChaosBounds(t *testing.T) {
	cfg := DefaultConfig()
	sets := generateAllOrnaments(cfg)

	for _, cat := range Categories() {
		set := sets[cat]
		require.Equal(t, cfg.Count(cat), set.Len(), cat.String())
		require.Len(t, set.Colors(), set.Len())

		limit := cfg.ExplosionRadius * Profile(cat).ChaosScale
		for i, inst := range set.Instances {
			assert.Equal(t, cat, inst.Category)
			assert.LessOrEqual(t, inst.ChaosPosition.Len(), limit+eps, "%s %d", cat, i)
		}
	}
}

func TestOrnamentScalesAndPalettes(t *testing.T) {
	cfg := DefaultConfig()
	sets := generateAllOrnaments(cfg)

	for _, cat := range Categories() {
		p := Profile(cat)
		pal := cfg.palette(cat)
		for i, inst := range sets[cat].Instances {
			assert.GreaterOrEqual(t, inst.BaseScale, p.ScaleMin, "%s %d", cat, i)
			assert.LessOrEqual(t, inst.BaseScale, p.ScaleMax, "%s %d", cat, i)
			assert.Contains(t, pal, inst.Color, "%s %d", cat, i)
		}
	}
}

func TestLightsShareOneWarmColor(t *testing.T) {
	set := generateAllOrnaments(DefaultConfig())[Light]
	want := MustHex("#ffecd1")
	for _, c := range set.Colors() {
		assert.Equal(t, want, c)
	}
}

func TestGiftsSitLowOnTheTree(t *testing.T) {
	cfg := DefaultConfig()
	h := cfg.OrnamentHeight
	set := generateAllOrnaments(cfg)[Gift]
	for i, inst := range set.Instances {
		y := inst.TargetPosition.Y()
		assert.GreaterOrEqual(t, y, -h/2+1-eps, "gift %d", i)
		assert.Less(t, y, -h/2+1+0.4*h, "gift %d", i)

		base := coneRadiusAt(y, h, cfg.OrnamentRadius) * 0.8
		r := horizontalDistance(inst.TargetPosition)
		assert.GreaterOrEqual(t, r, base-eps, "gift %d", i)
		assert.LessOrEqual(t, r, base+1+eps, "gift %d", i)
	}
}

func TestSpiralCategoriesSpanTheirBands(t *testing.T) {
	cfg := DefaultConfig()
	sets := generateAllOrnaments(cfg)

	baubles := sets[Bauble].Instances
	assert.InDelta(t, -(cfg.OrnamentHeight-2)/2, baubles[0].TargetPosition.Y(), eps)

	lights := sets[Light].Instances
	assert.InDelta(t, -cfg.OrnamentHeight/2, lights[0].TargetPosition.Y(), eps)
	last := lights[len(lights)-1].TargetPosition.Y()
	assert.Less(t, last, cfg.OrnamentHeight/2)
}

func TestOrnamentGenerationIsReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 2024
	a := generateAllOrnaments(cfg)
	b := generateAllOrnaments(cfg)
	for _, cat := range Categories() {
		assert.Equal(t, a[cat].Instances, b[cat].Instances, cat.String())
	}
}

func TestResizingOneCategoryKeepsOthers(t *testing.T) {
	cfg := DefaultConfig()
	a := generateAllOrnaments(cfg)
	cfg.GiftCount = 7
	b := generateAllOrnaments(cfg)
	assert.Equal(t, a[Bauble].Instances, b[Bauble].Instances)
	assert.Equal(t, a[Light].Instances, b[Light].Instances)
}
