package mapview

import "fmt"

// Style selects the base map imagery.
type Style string

const (
	StyleStandard  Style = "standard"
	StyleSatellite Style = "satellite"
)

// Theme selects light or dark base tiles for the standard style.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const (
	satelliteTileURL = "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}"
	darkTileURL      = "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png"
	lightTileURL     = "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png"
)

// IsValid returns true if the style is recognized.
func (s Style) IsValid() bool {
	return s == StyleStandard || s == StyleSatellite
}

// IsValid returns true if the theme is recognized.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// ParseStyle converts a string to a Style, returning an error if invalid.
func ParseStyle(s string) (Style, error) {
	style := Style(s)
	if !style.IsValid() {
		return "", fmt.Errorf("invalid map style: %s", s)
	}
	return style, nil
}

// ParseTheme converts a string to a Theme, returning an error if invalid.
func ParseTheme(s string) (Theme, error) {
	theme := Theme(s)
	if !theme.IsValid() {
		return "", fmt.Errorf("invalid map theme: %s", s)
	}
	return theme, nil
}

// TileURL returns the tile URL template for the given style and theme.
// Satellite imagery ignores the theme.
func TileURL(style Style, theme Theme) string {
	if style == StyleSatellite {
		return satelliteTileURL
	}
	if theme == ThemeDark {
		return darkTileURL
	}
	return lightTileURL
}

// TileAttribution returns the attribution string for the given style.
func TileAttribution(style Style) string {
	if style == StyleSatellite {
		return "© ESRI World Imagery"
	}
	return "© OpenStreetMap contributors, © CARTO"
}
