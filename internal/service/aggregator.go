package service

import (
	"slices"

	"github.com/guttosm/spool-service/internal/domain/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ColorSignatureOf returns the grouping signature of a filament's color.
// multi_color_hexes wins over color_hex; both empty yields the "no color" signature.
func ColorSignatureOf(f *model.Filament) model.ColorSignature {
	switch {
	case f == nil:
		return model.NoColor()
	case f.MultiColorHexes != "":
		return model.MultiColor(f.MultiColorHexes, f.MultiColorDirection)
	case f.ColorHex != "":
		return model.SolidColor(f.ColorHex)
	default:
		return model.NoColor()
	}
}

// GroupKeyOf returns the aggregation key of a spool.
func GroupKeyOf(spool *model.Spool) model.GroupKey {
	material := model.UnknownMaterial
	if spool.Filament != nil && spool.Filament.Material != "" {
		material = spool.Filament.Material
	}
	return model.GroupKey{Material: material, Color: ColorSignatureOf(spool.Filament)}
}

// Aggregate groups the non-archived spools by material and color signature
// and totals their weights. It never fails and never modifies spools.
//
// Display fields of a group come from the first spool seen for its key.
// Groups are ordered by material, then by color label, ignoring case; ties
// keep scan order.
func Aggregate(spools []model.Spool) model.FilamentSummary {
	summary := model.FilamentSummary{Groups: []model.FilamentGroup{}}
	index := make(map[model.GroupKey]int)

	for i := range spools {
		spool := &spools[i]
		if spool.Archived {
			continue
		}

		remaining := model.ValueOrZero(spool.RemainingWeight)
		var net float64
		if spool.Filament != nil {
			net = model.ValueOrZero(spool.Filament.Weight)
		}

		summary.TotalSpools++
		summary.TotalRemainingWeight += remaining

		key := GroupKeyOf(spool)
		if pos, ok := index[key]; ok {
			group := &summary.Groups[pos]
			group.SpoolCount++
			group.TotalRemainingWeight += remaining
			group.TotalFilamentWeight += net
			continue
		}

		group := model.FilamentGroup{
			Key:                  key.String(),
			Material:             key.Material,
			SpoolCount:           1,
			TotalRemainingWeight: remaining,
			TotalFilamentWeight:  net,
		}
		if f := spool.Filament; f != nil {
			group.ColorHex = f.ColorHex
			group.MultiColorHexes = f.MultiColorHexes
			group.MultiColorDirection = f.MultiColorDirection
			group.Name = f.Name
			group.VendorName = f.VendorName()
		}
		index[key] = len(summary.Groups)
		summary.Groups = append(summary.Groups, group)
	}

	sortGroups(summary.Groups)
	return summary
}

// sortGroups orders groups by material then color label using a
// case-insensitive root collation. A collator is not safe for concurrent
// use, so each call builds its own.
func sortGroups(groups []model.FilamentGroup) {
	if len(groups) < 2 {
		return
	}
	col := collate.New(language.Und, collate.IgnoreCase)
	slices.SortStableFunc(groups, func(a, b model.FilamentGroup) int {
		if c := col.CompareString(a.Material, b.Material); c != 0 {
			return c
		}
		return col.CompareString(a.ColorLabel(), b.ColorLabel())
	})
}
