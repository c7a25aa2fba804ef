package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func catalogTestDefs() []AchievementDefinition {
	return []AchievementDefinition{
		{ID: "a", Name: "A", Category: CategoryTaskMastery, Rarity: RarityCommon, Criteria: Criteria{Counter: CounterTasksCompleted, Target: 1}},
		{ID: "b", Name: "B", Category: CategoryFocus, Rarity: RarityRare, Criteria: Criteria{Counter: CounterTimerSessions, Target: 2}},
		{ID: "c", Name: "C", Category: CategoryTaskMastery, Rarity: RarityRare, Criteria: Criteria{Counter: CounterTasksCompleted, Target: 5}, HiddenUntilUnlocked: true},
	}
}

func TestCatalogLookup(t *testing.T) {
	catalog := NewCatalog(catalogTestDefs())

	def := catalog.Lookup("b")
	assert.NotNil(t, def)
	assert.Equal(t, "B", def.Name)

	assert.Nil(t, catalog.Lookup("nope"), "unknown ids return nil, not an error")
}

func TestCatalogLookupReturnsCopy(t *testing.T) {
	catalog := NewCatalog(catalogTestDefs())

	def := catalog.Lookup("a")
	def.Name = "mutated"

	assert.Equal(t, "A", catalog.Lookup("a").Name)
}

func TestCatalogAllPreservesDeclarationOrder(t *testing.T) {
	catalog := NewCatalog(catalogTestDefs())

	var ids []string
	for _, def := range catalog.All() {
		ids = append(ids, def.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Equal(t, 3, catalog.Len())
}

func TestCatalogByCategory(t *testing.T) {
	catalog := NewCatalog(catalogTestDefs())

	defs := catalog.ByCategory(CategoryTaskMastery)
	assert.Len(t, defs, 2)
	assert.Equal(t, "a", defs[0].ID)
	assert.Equal(t, "c", defs[1].ID)

	assert.Empty(t, catalog.ByCategory(CategorySocial))
}

func TestCatalogByRarity(t *testing.T) {
	catalog := NewCatalog(catalogTestDefs())

	defs := catalog.ByRarity(RarityRare)
	assert.Len(t, defs, 2)
	assert.Equal(t, "b", defs[0].ID)
	assert.Equal(t, "c", defs[1].ID)

	assert.Empty(t, catalog.ByRarity(RarityLegendary))
}

func TestCatalogPartition(t *testing.T) {
	catalog := NewCatalog(catalogTestDefs())

	visible, hidden := catalog.Partition()
	assert.Len(t, visible, 2)
	assert.Len(t, hidden, 1)
	assert.Equal(t, "c", hidden[0].ID)
}

func TestDefaultCatalogContent(t *testing.T) {
	catalog := DefaultCatalog()
	assert.Equal(t, len(DefaultAchievements), catalog.Len())

	seen := make(map[string]bool)
	for _, def := range DefaultAchievements {
		assert.False(t, seen[def.ID], "duplicate achievement id %q", def.ID)
		seen[def.ID] = true

		assert.NotEmpty(t, def.Name, "%s has no name", def.ID)
		assert.NotEmpty(t, def.Description, "%s has no description", def.ID)

		if def.Criteria.Counter == CounterCustom || def.Criteria.Counter == CounterTimeOfDay {
			assert.NotEmpty(t, def.Criteria.Condition, "%s routes to condition dispatch but has no condition", def.ID)
		} else {
			assert.Greater(t, def.Criteria.Target, 0, "%s has no threshold target", def.ID)
		}
	}
}
