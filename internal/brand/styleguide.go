package brand

// ColorPair is a surface color and the foreground drawn on it.
type ColorPair struct {
	Color      StyleValue `yaml:"color"`
	Foreground StyleValue `yaml:"foreground"`
}

// InputColors describes form inputs.
type InputColors struct {
	Input      StyleValue `yaml:"input"`
	Foreground StyleValue `yaml:"foreground"`
}

// SidebarColors describes the optional sidebar palette.
type SidebarColors struct {
	Sidebar           StyleValue `yaml:"sidebar"`
	Foreground        StyleValue `yaml:"foreground"`
	Primary           StyleValue `yaml:"primary"`
	PrimaryForeground StyleValue `yaml:"primary_foreground"`
	Accent            StyleValue `yaml:"accent"`
	AccentForeground  StyleValue `yaml:"accent_foreground"`
	Border            StyleValue `yaml:"border"`
	Ring              StyleValue `yaml:"ring"`
}

// StyleGuide assigns tokens to semantic slots.
type StyleGuide struct {
	Primary     ColorPair  `yaml:"primary"`
	Secondary   ColorPair  `yaml:"secondary"`
	Accent      ColorPair  `yaml:"accent"`
	Card        ColorPair  `yaml:"card"`
	Popover     ColorPair  `yaml:"popover"`
	Muted       ColorPair  `yaml:"muted"`
	Destructive ColorPair  `yaml:"destructive"`
	Success     *ColorPair `yaml:"success"`
	Info        *ColorPair `yaml:"info"`
	Warning     *ColorPair `yaml:"warning"`

	Input   InputColors    `yaml:"input"`
	Border  StyleValue     `yaml:"border"`
	Ring    StyleValue     `yaml:"ring"`
	Sidebar *SidebarColors `yaml:"sidebar"`

	Radius  StyleValue `yaml:"radius"`
	Spacing StyleValue `yaml:"spacing"`
}

// Shadow is a named box-shadow emitted as --shadow-<name>.
type Shadow struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// OtherVars holds auxiliary variables that live outside the style guide.
type OtherVars struct {
	Background StyleValue `yaml:"background"`
	Foreground StyleValue `yaml:"foreground"`
	// Sidebar sets the sidebar surface; SidebarColors overrides individual
	// slots of StyleGuide.Sidebar.
	Sidebar       StyleValue     `yaml:"sidebar"`
	SidebarColors *SidebarColors `yaml:"sidebar_colors"`

	Shadows      []Shadow     `yaml:"shadows"`
	Radius       StyleValue   `yaml:"radius"`
	BorderWidth  StyleValue   `yaml:"border_width"`
	BorderStyle  StyleValue   `yaml:"border_style"`
	Chart        []StyleValue `yaml:"chart"`
	ChartOutline StyleValue   `yaml:"chart_outline"`
}
