package ui

// Icon identifies one of the glyphs a UI type schema or command may show.
type Icon string

const (
	IconGlobe           Icon = "Globe"
	IconLayoutDashboard Icon = "LayoutDashboard"
	IconSmartphone      Icon = "Smartphone"
	IconMonitor         Icon = "Monitor"
	IconBox             Icon = "Box"
	IconFolderOpen      Icon = "FolderOpen"
	IconTrash2          Icon = "Trash2"
	IconLoader2         Icon = "Loader2"
)

// FallbackGlyph is shown for icon ids outside the table.
const FallbackGlyph = "◆"

var glyphs = map[Icon]string{
	IconGlobe:           "\U0001F310",
	IconLayoutDashboard: "\U0001F4CA",
	IconSmartphone:      "\U0001F4F1",
	IconMonitor:         "\U0001F5A5",
	IconBox:             "\U0001F4E6",
	IconFolderOpen:      "\U0001F4C2",
	IconTrash2:          "\U0001F5D1",
	IconLoader2:         "◌",
}

// Icons returns the known icon ids.
func Icons() []Icon {
	return []Icon{
		IconGlobe, IconLayoutDashboard, IconSmartphone, IconMonitor,
		IconBox, IconFolderOpen, IconTrash2, IconLoader2,
	}
}

// Known reports whether i is in the icon table.
func (i Icon) Known() bool {
	_, ok := glyphs[i]
	return ok
}

// Glyph returns the terminal glyph for i, or FallbackGlyph.
func (i Icon) Glyph() string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return FallbackGlyph
}

// Glyph looks up the glyph for an icon id string.
func Glyph(id string) string {
	return Icon(id).Glyph()
}
