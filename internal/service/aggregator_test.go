//go:build !integration

package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/service"
)

func solidSpool(material, hex string, remaining, net *float64) model.Spool {
	return model.Spool{
		RemainingWeight: remaining,
		Filament: &model.Filament{
			Material: material,
			ColorHex: hex,
			Weight:   net,
		},
	}
}

func multiSpool(material, hexes, direction string, remaining float64) model.Spool {
	return model.Spool{
		RemainingWeight: model.Float(remaining),
		Filament: &model.Filament{
			Material:            material,
			MultiColorHexes:     hexes,
			MultiColorDirection: direction,
		},
	}
}

func TestAggregate_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		spools         []model.Spool
		expectedGroups int
		totalSpools    int
		totalRemaining float64
		validate       func(*testing.T, model.FilamentSummary)
	}{
		{
			name:           "single solid spool",
			spools:         []model.Spool{solidSpool("PLA", "FF0000", model.Float(500), model.Float(1000))},
			expectedGroups: 1,
			totalSpools:    1,
			totalRemaining: 500,
			validate: func(t *testing.T, s model.FilamentSummary) {
				g := s.Groups[0]
				assert.Equal(t, 1, g.SpoolCount)
				assert.Equal(t, 500.0, g.TotalRemainingWeight)
				assert.Equal(t, 1000.0, g.TotalFilamentWeight)
				assert.Equal(t, "#FF0000", g.ColorLabel())
			},
		},
		{
			name: "two spools of the same filament merge",
			spools: []model.Spool{
				solidSpool("PLA", "00FF00", model.Float(200), nil),
				solidSpool("PLA", "00FF00", model.Float(300), nil),
			},
			expectedGroups: 1,
			totalSpools:    2,
			totalRemaining: 500,
			validate: func(t *testing.T, s model.FilamentSummary) {
				assert.Equal(t, 2, s.Groups[0].SpoolCount)
				assert.Equal(t, 500.0, s.Groups[0].TotalRemainingWeight)
			},
		},
		{
			name: "archived spool is ignored",
			spools: []model.Spool{
				func() model.Spool {
					s := solidSpool("PLA", "FF0000", model.Float(500), model.Float(1000))
					s.Archived = true
					return s
				}(),
			},
			expectedGroups: 0,
			totalSpools:    0,
			totalRemaining: 0,
		},
		{
			name: "same hexes with different direction stay apart",
			spools: []model.Spool{
				multiSpool("PLA", "FF0000,00FF00", model.MultiColorLongitudinal, 100),
				multiSpool("PLA", "FF0000,00FF00", "", 200),
			},
			expectedGroups: 2,
			totalSpools:    2,
			totalRemaining: 300,
			validate: func(t *testing.T, s model.FilamentSummary) {
				assert.NotEqual(t, s.Groups[0].Key, s.Groups[1].Key)
				// equal labels keep scan order
				assert.Equal(t, model.MultiColorLongitudinal, s.Groups[0].MultiColorDirection)
				assert.Equal(t, "", s.Groups[1].MultiColorDirection)
			},
		},
		{
			name:           "missing material and color",
			spools:         []model.Spool{{RemainingWeight: model.Float(42), Filament: &model.Filament{}}},
			expectedGroups: 1,
			totalSpools:    1,
			totalRemaining: 42,
			validate: func(t *testing.T, s model.FilamentSummary) {
				assert.Equal(t, model.UnknownMaterial, s.Groups[0].Material)
				assert.Equal(t, model.UnknownColorLabel, s.Groups[0].ColorLabel())
				assert.Nil(t, s.Groups[0].Swatch())
			},
		},
		{
			name:           "empty input",
			spools:         nil,
			expectedGroups: 0,
			totalSpools:    0,
			totalRemaining: 0,
			validate: func(t *testing.T, s model.FilamentSummary) {
				assert.NotNil(t, s.Groups)
			},
		},
		{
			name:           "spool without filament defaults everything",
			spools:         []model.Spool{{}},
			expectedGroups: 1,
			totalSpools:    1,
			totalRemaining: 0,
			validate: func(t *testing.T, s model.FilamentSummary) {
				assert.Equal(t, model.UnknownMaterial, s.Groups[0].Material)
				assert.Equal(t, 0.0, s.Groups[0].TotalFilamentWeight)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := service.Aggregate(tt.spools)

			require.Len(t, summary.Groups, tt.expectedGroups)
			assert.Equal(t, tt.totalSpools, summary.TotalSpools)
			assert.InDelta(t, tt.totalRemaining, summary.TotalRemainingWeight, 1e-9)
			if tt.validate != nil {
				tt.validate(t, summary)
			}
		})
	}
}

func TestAggregate_SolidAndMultiNeverMerge(t *testing.T) {
	spools := []model.Spool{
		solidSpool("PLA", "FF0000,00FF00", model.Float(1), nil),
		multiSpool("PLA", "FF0000,00FF00", "", 1),
	}

	summary := service.Aggregate(spools)

	assert.Len(t, summary.Groups, 2)
}

func TestAggregate_MaterialIsCaseSensitiveForGrouping(t *testing.T) {
	spools := []model.Spool{
		solidSpool("PLA", "FF0000", model.Float(1), nil),
		solidSpool("pla", "FF0000", model.Float(1), nil),
	}

	summary := service.Aggregate(spools)

	assert.Len(t, summary.Groups, 2)
}

func TestAggregate_DisplayFieldsComeFromFirstSpool(t *testing.T) {
	first := solidSpool("PETG", "112233", model.Float(100), model.Float(1000))
	first.Filament.Name = "Deep Blue"
	first.Filament.Vendor = &model.Vendor{Name: "Prusament"}
	second := solidSpool("PETG", "112233", model.Float(100), model.Float(750))
	second.Filament.Name = "Other Name"
	second.Filament.Vendor = &model.Vendor{Name: "Other Vendor"}

	summary := service.Aggregate([]model.Spool{first, second})

	require.Len(t, summary.Groups, 1)
	g := summary.Groups[0]
	assert.Equal(t, "Deep Blue", g.Name)
	assert.Equal(t, "Prusament", g.VendorName)
	assert.Equal(t, 1750.0, g.TotalFilamentWeight)
}

func TestAggregate_SortOrder(t *testing.T) {
	spools := []model.Spool{
		solidSpool("PLA", "ff0000", model.Float(1), nil),
		solidSpool("abs", "000000", model.Float(1), nil),
		{Filament: &model.Filament{Material: "PLA"}},
		multiSpool("PLA", "FF0000,0000FF", "", 1),
		solidSpool("PETG", "FFFFFF", model.Float(1), nil),
		solidSpool("PLA", "#00ff00", model.Float(1), nil),
	}

	summary := service.Aggregate(spools)

	labels := make([]string, 0, len(summary.Groups))
	for _, g := range summary.Groups {
		labels = append(labels, g.Material+" "+g.ColorLabel())
	}
	assert.Equal(t, []string{
		"abs #000000",
		"PETG #FFFFFF",
		"PLA #00FF00",
		"PLA #FF0000",
		"PLA Multi-color",
		"PLA Unknown",
	}, labels)
}

func TestAggregate_Properties(t *testing.T) {
	spools := []model.Spool{
		solidSpool("PLA", "FF0000", model.Float(120.5), model.Float(1000)),
		solidSpool("PLA", "FF0000", nil, model.Float(1000)),
		multiSpool("PETG", "FFFFFF,000000", model.MultiColorLongitudinal, 333.3),
		{Archived: true, RemainingWeight: model.Float(9999), Filament: &model.Filament{Material: "ABS"}},
		solidSpool("ASA", "", model.Float(10), nil),
		{Archived: true, RemainingWeight: model.Float(1), Filament: &model.Filament{Material: "PLA", ColorHex: "FF0000"}},
		solidSpool("PLA", "00FF00", model.Float(0.1), nil),
	}

	summary := service.Aggregate(spools)

	t.Run("spool counts add up", func(t *testing.T) {
		count := 0
		for _, g := range summary.Groups {
			count += g.SpoolCount
		}
		assert.Equal(t, summary.TotalSpools, count)
		assert.Equal(t, 5, summary.TotalSpools)
	})

	t.Run("remaining weights add up", func(t *testing.T) {
		var total float64
		for _, g := range summary.Groups {
			total += g.TotalRemainingWeight
		}
		assert.InDelta(t, summary.TotalRemainingWeight, total, 1e-9)
	})

	t.Run("archived spools contribute nothing", func(t *testing.T) {
		for _, g := range summary.Groups {
			assert.NotEqual(t, "ABS", g.Material)
		}
		assert.InDelta(t, 463.9, summary.TotalRemainingWeight, 1e-9)
	})

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, summary, service.Aggregate(spools))
	})

	t.Run("keys are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, g := range summary.Groups {
			assert.False(t, seen[g.Key], "duplicate key %s", g.Key)
			seen[g.Key] = true
		}
	})
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	spools := []model.Spool{
		solidSpool("PLA", "ff0000", nil, nil),
		solidSpool("abs", "000000", model.Float(5), nil),
	}

	_ = service.Aggregate(spools)

	assert.Equal(t, "PLA", spools[0].Filament.Material)
	assert.Equal(t, "ff0000", spools[0].Filament.ColorHex)
	assert.Nil(t, spools[0].RemainingWeight)
	assert.Equal(t, "abs", spools[1].Filament.Material)
}

func TestGroupKeyOf(t *testing.T) {
	tests := []struct {
		name     string
		spool    model.Spool
		expected model.GroupKey
	}{
		{
			name:     "solid",
			spool:    solidSpool("PLA", "FF0000", nil, nil),
			expected: model.GroupKey{Material: "PLA", Color: model.SolidColor("FF0000")},
		},
		{
			name:     "multi wins over solid",
			spool:    model.Spool{Filament: &model.Filament{Material: "PLA", ColorHex: "FF0000", MultiColorHexes: "FF0000,00FF00", MultiColorDirection: "coaxial"}},
			expected: model.GroupKey{Material: "PLA", Color: model.MultiColor("FF0000,00FF00", "coaxial")},
		},
		{
			name:     "no filament",
			spool:    model.Spool{},
			expected: model.GroupKey{Material: model.UnknownMaterial, Color: model.NoColor()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.GroupKeyOf(&tt.spool))
		})
	}
}
