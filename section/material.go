package section

import (
	"strings"

	"github.com/draftworks/draft"
)

// materialColors is the fill and stroke a cut slab renders with.
type materialColors struct {
	fill   draft.RGBA
	stroke draft.RGBA
}

// materialPalette maps slab materials to their section hatch colors.
var materialPalette = map[string]materialColors{
	"concrete": {fill: draft.Hex("#c9c9c9"), stroke: draft.Hex("#4a4a4a")},
	"timber":   {fill: draft.Hex("#d9ab6e"), stroke: draft.Hex("#7a5a2f")},
	"steel":    {fill: draft.Hex("#9aa7b5"), stroke: draft.Hex("#3d4b5c")},
}

// genericColors is the fallback for unknown or unset materials. An
// unrecognized material must never block generation of the rest.
var genericColors = materialColors{fill: draft.Hex("#e0e0e0"), stroke: draft.Black}

func colorsFor(material string) materialColors {
	if c, ok := materialPalette[strings.ToLower(material)]; ok {
		return c
	}
	if material != "" {
		draft.Logger().Warn("unknown slab material, using generic colors", "material", material)
	}
	return genericColors
}
