package catalog

import (
	"testing"

	"lumea/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateAddonShapes(t *testing.T) {
	valid := &models.Service{
		Name:  "Keratin Treatment",
		Price: 12.0,
		Addons: []models.Addon{
			{Label: "Deep Condition", Price: 2.0, Active: true},
		},
		AddonGroups: []models.AddonGroup{
			{Title: "Length", Type: models.GroupTypeSingle, Options: []models.AddonOption{
				{Label: "Short", Price: 0},
				{Label: "Long", Price: 3.0},
			}},
		},
		PackageOptions: []models.PackageOption{
			{Title: "5 Sessions", SessionsCount: 5, DiscountPercent: 15},
		},
	}
	assert.NoError(t, validateAddonShapes(valid))

	t.Run("negative addon price", func(t *testing.T) {
		svc := &models.Service{Addons: []models.Addon{{Label: "Bad", Price: -1}}}
		assert.Error(t, validateAddonShapes(svc))
	})

	t.Run("unknown group type", func(t *testing.T) {
		svc := &models.Service{AddonGroups: []models.AddonGroup{{Title: "Weird", Type: "triple"}}}
		assert.Error(t, validateAddonShapes(svc))
	})

	t.Run("negative option price", func(t *testing.T) {
		svc := &models.Service{AddonGroups: []models.AddonGroup{
			{Title: "Length", Type: models.GroupTypeMulti, Options: []models.AddonOption{{Label: "Bad", Price: -0.5}}},
		}}
		assert.Error(t, validateAddonShapes(svc))
	})

	t.Run("non-positive sessions count", func(t *testing.T) {
		svc := &models.Service{PackageOptions: []models.PackageOption{{Title: "Bad", SessionsCount: 0}}}
		assert.Error(t, validateAddonShapes(svc))
	})
}

func TestAssignAddonIDs(t *testing.T) {
	svc := &models.Service{
		Addons: []models.Addon{{Label: "New"}, {ID: "keep-addon", Label: "Existing"}},
		AddonGroups: []models.AddonGroup{
			{Title: "Fresh", Options: []models.AddonOption{{Label: "A"}, {Label: "B"}}},
		},
		PackageOptions: []models.PackageOption{{Title: "Bundle", SessionsCount: 3}},
	}

	assignAddonIDs(svc)

	assert.NotEmpty(t, svc.Addons[0].ID)
	assert.Equal(t, "keep-addon", svc.Addons[1].ID)
	assert.NotEmpty(t, svc.AddonGroups[0].ID)
	assert.NotEmpty(t, svc.AddonGroups[0].Options[0].ID)
	assert.NotEmpty(t, svc.PackageOptions[0].ID)
	assert.NotEqual(t, svc.AddonGroups[0].Options[0].ID, svc.AddonGroups[0].Options[1].ID)
}
