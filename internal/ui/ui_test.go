package ui

import (
	"testing"

	"go-lane-skirmish/internal/app"
	"go-lane-skirmish/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), "n=%d", n)
	}
}

func TestWaveLabel(t *testing.T) {
	assert.Equal(t, "Wave III  45s", waveLabel(3, 45))
	assert.Equal(t, "Wave I  13s", waveLabel(1, 12.2))
	assert.Equal(t, "Wave II  0s", waveLabel(2, -0.5))
}

func TestItemSlotsHitTest(t *testing.T) {
	s := NewItemSlots()
	slot, ok := s.SlotAt(slotCenterX, slotTopY+slotSpacing)
	require.True(t, ok)
	assert.Equal(t, defs.SlotArmor, slot)

	_, ok = s.SlotAt(slotCenterX+slotSize, slotTopY)
	assert.False(t, ok)

	assert.Equal(t, "A", slotCaption(defs.SlotArmor, ""))
	assert.Equal(t, "Divine", slotCaption(defs.SlotArmor, "Divine Shield"))
}

func TestShopPanelLayout(t *testing.T) {
	p := NewShopPanel(defs.DefaultBalance())
	require.Len(t, p.buttons, len(defs.ItemLibrary))

	for _, b := range p.buttons {
		center := b.rect.Min.Add(b.rect.Max).Div(2)
		id, ok := p.ItemAt(center.X, center.Y)
		require.True(t, ok)
		assert.Equal(t, b.item.ID, id)
	}
	// Вторая колонка, первая строка: второй предмет каталога
	assert.Equal(t, defs.ItemSplashBlade, p.buttons[1].item.ID)
	assert.Greater(t, p.buttons[1].rect.Min.X, p.buttons[0].rect.Max.X)

	_, ok := p.ItemAt(2, 2)
	assert.False(t, ok)
	assert.True(t, p.Close.Contains(p.Close.Rect.Min.X+1, p.Close.Rect.Min.Y+1))
}

func TestShopPanelMessage(t *testing.T) {
	p := NewShopPanel(defs.DefaultBalance())
	assert.Empty(t, p.Message())
	p.SetMessage("not enough gold")
	assert.Equal(t, "not enough gold", p.Message())
}

func TestUnitLines(t *testing.T) {
	left, right := unitLines(app.UnitView{
		ID:       3,
		Team:     "B",
		Kind:     "creep",
		Ranged:   true,
		HP:       -4,
		MaxHP:    300,
		State:    "attacking",
		TargetID: 1,
		Shielded: true,
	})
	assert.Equal(t, []string{"B creep (ranged)", "HP: 0 / 300"}, left)
	assert.Equal(t, []string{"State: attacking", "Target: #1", "Shielded"}, right)
}
