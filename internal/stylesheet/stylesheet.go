// Package stylesheet compiles a brand into its global CSS: the :root variable
// set, the framework @theme inline re-exports and brand-scoped typography.
package stylesheet

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/brand"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/cssgen"
	"github.com/Guerrilla-Interactive/nextgen-theme-sub000/internal/log"
)

// DefaultUtilitySizeClasses are the size utilities that keep control of
// font-size inside a brand scope.
var DefaultUtilitySizeClasses = []string{
	"text-xs", "text-sm", "text-base", "text-lg", "text-xl",
	"text-2xl", "text-3xl", "text-4xl", "text-5xl",
	"text-6xl", "text-7xl", "text-8xl", "text-9xl",
}

// TypographyElements receive brand typography rules, in emission order.
var TypographyElements = []string{"h1", "h2", "h3", "h4", "h5", "h6", "p"}

// Options tunes generation. The zero value uses the defaults.
type Options struct {
	UtilitySizeClasses []string
}

var (
	semanticAliases = []string{
		"background", "card", "popover", "sidebar", "border", "input",
		"foreground", "ring", "primary", "secondary", "accent", "destructive",
		"muted", "success", "info", "warning",
		"chart-1", "chart-2", "chart-3", "chart-4", "chart-5", "chart-outline",
	}
	stepAliasRoles = []string{
		"primary", "secondary", "accent", "destructive", "success", "ring",
		"chart-1", "chart-2", "chart-3", "chart-4", "chart-5",
	}
	derivedForegrounds  = []string{"primary", "secondary", "accent", "destructive", "card", "popover", "success"}
	declaredForegrounds = []string{"muted-foreground", "info-foreground", "warning-foreground", "input-foreground"}
	sidebarVars         = []string{
		"sidebar-foreground", "sidebar-primary", "sidebar-primary-foreground",
		"sidebar-accent", "sidebar-accent-foreground", "sidebar-border", "sidebar-ring",
	}
	layoutVars = []string{"radius", "spacing", "border-width", "border-style"}
)

const sidebarSwatch = "sage-2"

type fontFamily struct {
	tag      string
	fallback string
}

var fontFamilies = []fontFamily{
	{tag: "sans", fallback: "ui-sans-serif, system-ui, sans-serif"},
	{tag: "serif", fallback: "ui-serif, Georgia, serif"},
	{tag: "mono", fallback: "ui-monospace, SFMono-Regular, monospace"},
}

type section struct {
	title string
	decls []cssgen.Decl
}

func (s *section) add(name, value string) {
	s.decls = append(s.decls, cssgen.Decl{Prop: name, Value: value})
}

// sheet is the resolved content of one stylesheet before it is written.
type sheet struct {
	brand   *brand.Brand
	root    []*section
	colors  []string      // :root variables re-exported as --color-*
	fonts   []cssgen.Decl // family variables, re-exported verbatim
	fontVar []string      // weight and size variables
	shadows []string
	sizes   map[string]bool
	weight  map[string]bool
}

// GenerateGlobalCSS compiles b with default options.
func GenerateGlobalCSS(b *brand.Brand) string {
	return GenerateGlobalCSSWithOptions(b, Options{})
}

// GenerateGlobalCSSWithOptions compiles b. It never fails: missing fonts and
// slots are skipped, unresolved references were already replaced by the
// fallback sentinel when the brand was built.
func GenerateGlobalCSSWithOptions(b *brand.Brand, opts Options) string {
	s := &sheet{brand: b, sizes: map[string]bool{}, weight: map[string]bool{}}
	s.collect()

	var w cssgen.Writer
	w.Banner(
		"Theme: "+b.Name,
		"Generated by nextgen-theme. Do not edit by hand.",
	)
	s.writeRoot(&w)
	s.writeThemeInline(&w)
	s.writeTypography(&w, opts.utilityClasses())

	log.Debug(log.CatCSS, "generated global css", "brand", b.Slug, "colors", len(s.colors))
	return w.String()
}

func (o Options) utilityClasses() []string {
	if len(o.UtilitySizeClasses) > 0 {
		return o.UtilitySizeClasses
	}
	return DefaultUtilitySizeClasses
}

func (s *sheet) section(title string) *section {
	sec := &section{title: title}
	s.root = append(s.root, sec)
	return sec
}

func (s *sheet) color(sec *section, name, value string) {
	sec.add(name, value)
	s.colors = append(s.colors, name)
}

func (s *sheet) collect() {
	b := s.brand
	vars := b.Vars

	swatches := s.section("Foundation swatches")
	for _, t := range b.Colors {
		s.color(swatches, t.VariableName, t.OKLCH)
	}

	extra := s.section("Extra steps")
	for _, t := range b.Colors {
		for _, es := range t.ExtraSteps {
			s.color(extra, es.Name, es.Value)
		}
	}

	steps := s.section("Lightness steps")
	for _, t := range b.Colors {
		for _, key := range brand.StepKeys {
			if expr, ok := t.ThemeSteps[key]; ok {
				s.color(steps, t.VariableName+"-"+string(key), expr)
			}
		}
	}

	aliases := s.section("Semantic aliases")
	for _, name := range semanticAliases {
		value, ok := vars[name]
		if !ok && name == "sidebar" {
			value, ok = s.sidebarFallback()
		}
		if ok {
			s.color(aliases, name, value)
		}
	}

	stepAliases := s.section("Semantic lightness steps")
	for _, role := range stepAliasRoles {
		token, ok := b.TokenFor(vars[role])
		if !ok || token.Category != brand.CategoryColor {
			continue
		}
		for _, key := range brand.StepKeys {
			if _, ok := token.ThemeSteps[key]; ok {
				s.color(stepAliases, role+"-"+string(key), "var(--"+token.VariableName+"-"+string(key)+")")
			}
		}
	}

	fgs := s.section("Foregrounds")
	for _, role := range derivedForegrounds {
		if value, ok := s.foreground(role); ok {
			s.color(fgs, role+"-foreground", value)
		}
	}
	for _, name := range declaredForegrounds {
		if value, ok := vars[name]; ok {
			s.color(fgs, name, value)
		}
	}

	sidebar := s.section("Sidebar")
	for _, name := range sidebarVars {
		if value, ok := vars[name]; ok {
			s.color(sidebar, name, value)
		}
	}

	s.collectTypography(s.section("Typography"))

	layout := s.section("Radius and shadows")
	for _, name := range layoutVars {
		if value, ok := vars[name]; ok {
			layout.add(name, value)
		}
	}
	for _, sh := range b.Other.Shadows {
		if value, ok := vars["shadow-"+sh.Name]; ok {
			layout.add("shadow-"+sh.Name, value)
			s.shadows = append(s.shadows, "shadow-"+sh.Name)
		}
	}
}

// sidebarFallback picks a sidebar-role token, then the sage-2 swatch when the
// brand defines one.
func (s *sheet) sidebarFallback() (string, bool) {
	for _, t := range s.brand.Colors {
		if brand.HasRole(t.Roles, brand.RoleSidebar) {
			return t.Var(), true
		}
	}
	for _, t := range s.brand.Colors {
		if t.VariableName == sidebarSwatch {
			return t.Var(), true
		}
	}
	return "", false
}

// foreground derives <role>-foreground: the source token's on-color, then the
// declared foreground, then (card and popover only) a contrast pick.
func (s *sheet) foreground(role string) (string, bool) {
	value, ok := s.brand.Vars[role]
	if !ok {
		return "", false
	}
	token, isToken := s.brand.TokenFor(value)
	if isToken && token.OnColor != "" {
		return token.OnColor, true
	}
	if fg, ok := s.brand.Vars[role+"-foreground"]; ok {
		return fg, true
	}
	if role != "card" && role != "popover" {
		return "", false
	}
	if !isToken {
		log.Debug(log.CatCSS, "surface is not a token, using light foreground", "brand", s.brand.Slug, "role", role)
		return brand.NearWhite, true
	}
	return brand.ReadableForeground(token), true
}

func (s *sheet) collectTypography(sec *section) {
	fonts := s.brand.Fonts
	for _, ff := range fontFamilies {
		value := ff.fallback
		if f, ok := brand.FindFont(fonts, ff.tag); ok && f.Family != "" {
			value = f.Family
		}
		sec.add("font-"+ff.tag, value)
		s.fonts = append(s.fonts, cssgen.Decl{Prop: "font-" + ff.tag, Value: value})
	}

	weights := map[string]string{}
	sizes := map[string]string{}
	for _, f := range fonts {
		for role, w := range f.Weights {
			if _, seen := weights[role]; !seen {
				weights[role] = brand.FontWeightValue(w)
			}
		}
		for role, size := range f.Sizes {
			if _, seen := sizes[role]; !seen {
				sizes[role] = size
			}
		}
	}
	for _, role := range slices.Sorted(maps.Keys(weights)) {
		sec.add("font-weight-"+role, weights[role])
		s.fontVar = append(s.fontVar, "font-weight-"+role)
		s.weight[role] = true
	}
	for _, role := range slices.Sorted(maps.Keys(sizes)) {
		sec.add("font-size-"+role, sizes[role])
		s.fontVar = append(s.fontVar, "font-size-"+role)
		s.sizes[role] = true
	}
}

func (s *sheet) writeRoot(w *cssgen.Writer) {
	w.Open(":root")
	first := true
	for _, sec := range s.root {
		if len(sec.decls) == 0 {
			continue
		}
		if !first {
			w.Blank()
		}
		first = false
		w.Comment(sec.title)
		for _, d := range sec.decls {
			w.Var(d.Prop, d.Value)
		}
	}
	w.Close()
}

func (s *sheet) writeThemeInline(w *cssgen.Writer) {
	w.Open("@theme inline")
	for _, name := range s.colors {
		w.Var("color-"+name, "var(--"+name+")")
	}
	for _, f := range s.fonts {
		w.Var(f.Prop, f.Value)
	}
	for _, name := range s.fontVar {
		w.Var(name, "var(--"+name+")")
	}
	if _, ok := s.brand.Vars["radius"]; ok {
		w.Var("radius-sm", "calc(var(--radius) - 4px)")
		w.Var("radius-md", "calc(var(--radius) - 2px)")
		w.Var("radius-lg", "var(--radius)")
		w.Var("radius-xl", "calc(var(--radius) + 4px)")
	}
	for _, name := range s.shadows {
		w.Var(name, "var(--"+name+")")
	}
	w.Close()
}

// writeTypography emits two rules per element. The first sets size and
// weight but yields to utility size classes; the second pins the family.
func (s *sheet) writeTypography(w *cssgen.Writer, utilities []string) {
	scope := "." + s.brand.Slug

	var not strings.Builder
	for _, u := range utilities {
		fmt.Fprintf(&not, `:not([class*="%s"])`, u)
	}

	for _, el := range TypographyElements {
		family := s.elementFamily(el)

		decls := []cssgen.Decl{{Prop: "font-family", Value: family}}
		if s.sizes[el] {
			decls = append(decls, cssgen.Decl{Prop: "font-size", Value: "var(--font-size-" + el + ")"})
		}
		if s.weight[el] {
			decls = append(decls, cssgen.Decl{Prop: "font-weight", Value: "var(--font-weight-" + el + ")"})
		}
		w.Block(scope+" "+el+not.String(), decls, false)
		w.Block(scope+" "+el, []cssgen.Decl{{Prop: "font-family", Value: family}}, true)
	}
}

func (s *sheet) elementFamily(el string) string {
	fonts := s.brand.Fonts
	if f, ok := brand.FindFont(fonts, el); ok && f.Family != "" {
		return f.Family
	}
	group := "body"
	if strings.HasPrefix(el, "h") {
		group = "heading"
	}
	if f, ok := brand.FindFont(fonts, group); ok && f.Family != "" {
		return f.Family
	}
	return "var(--font-sans)"
}
