package entity

import "strings"

// IconFamily is the closed set of glyph families a document may name.
type IconFamily int

const (
	IconFamilyUnknown IconFamily = iota
	IconFamilyIonicons
	IconFamilyMaterialIcons
	IconFamilyFontAwesome
	IconFamilyMaterialCommunityIcons
)

// DefaultTabIcon is shown for tabs that do not name a glyph.
const DefaultTabIcon = "md-alert"

// IconFamilies returns the known families in a stable order.
func IconFamilies() []IconFamily {
	return []IconFamily{
		IconFamilyIonicons,
		IconFamilyMaterialIcons,
		IconFamilyFontAwesome,
		IconFamilyMaterialCommunityIcons,
	}
}

// ParseIconFamily matches a family name case-insensitively.
// An empty name selects Ionicons.
func ParseIconFamily(s string) IconFamily {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ionicons":
		return IconFamilyIonicons
	case "materialicons":
		return IconFamilyMaterialIcons
	case "fontawesome":
		return IconFamilyFontAwesome
	case "materialcommunityicons":
		return IconFamilyMaterialCommunityIcons
	default:
		return IconFamilyUnknown
	}
}

func (f IconFamily) String() string {
	switch f {
	case IconFamilyIonicons:
		return "Ionicons"
	case IconFamilyMaterialIcons:
		return "MaterialIcons"
	case IconFamilyFontAwesome:
		return "FontAwesome"
	case IconFamilyMaterialCommunityIcons:
		return "MaterialCommunityIcons"
	default:
		return "unknown"
	}
}
