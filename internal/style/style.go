// Package style maps symbolic style names to their platform renderings:
// pterm colours for terminals and CSS declarations for JavaScript consoles.
package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pterm/pterm"
)

// HighlightCSS is the console rule used for [[highlighted]] segments.
const HighlightCSS = "color: #d7af00; text-decoration: underline; font-weight: bold"

// Func decorates text for a terminal.
type Func func(text string) string

type entry struct {
	color pterm.Color
	css   string
}

var table = map[string]entry{
	"reset":         {pterm.Reset, ""},
	"bold":          {pterm.Bold, "font-weight: bold"},
	"dim":           {pterm.Fuzzy, "opacity: 0.7"},
	"italic":        {pterm.Italic, "font-style: italic"},
	"underline":     {pterm.Underscore, "text-decoration: underline"},
	"blink":         {pterm.Blink, ""},
	"inverse":       {pterm.Reverse, "filter: invert(100%)"},
	"hidden":        {pterm.Concealed, "visibility: hidden"},
	"strikethrough": {pterm.Strikethrough, "text-decoration: line-through"},

	"black":   {pterm.FgBlack, "color: black"},
	"red":     {pterm.FgRed, "color: red"},
	"green":   {pterm.FgGreen, "color: green"},
	"yellow":  {pterm.FgYellow, "color: #b58900"},
	"blue":    {pterm.FgBlue, "color: blue"},
	"magenta": {pterm.FgMagenta, "color: magenta"},
	"cyan":    {pterm.FgCyan, "color: darkcyan"},
	"white":   {pterm.FgWhite, "color: white"},
	"gray":    {pterm.FgGray, "color: gray"},
	"grey":    {pterm.FgGray, "color: gray"},

	"blackBright":   {pterm.FgDarkGray, "color: dimgray"},
	"redBright":     {pterm.FgLightRed, "color: #ff5555"},
	"greenBright":   {pterm.FgLightGreen, "color: #55ff55"},
	"yellowBright":  {pterm.FgLightYellow, "color: #ffff55"},
	"blueBright":    {pterm.FgLightBlue, "color: #5555ff"},
	"magentaBright": {pterm.FgLightMagenta, "color: #ff55ff"},
	"cyanBright":    {pterm.FgLightCyan, "color: #55ffff"},
	"whiteBright":   {pterm.FgLightWhite, "color: #ffffff"},

	"bgBlack":   {pterm.BgBlack, "background-color: black"},
	"bgRed":     {pterm.BgRed, "background-color: red"},
	"bgGreen":   {pterm.BgGreen, "background-color: green"},
	"bgYellow":  {pterm.BgYellow, "background-color: #b58900"},
	"bgBlue":    {pterm.BgBlue, "background-color: blue"},
	"bgMagenta": {pterm.BgMagenta, "background-color: magenta"},
	"bgCyan":    {pterm.BgCyan, "background-color: darkcyan"},
	"bgWhite":   {pterm.BgWhite, "background-color: white"},
	"bgGray":    {pterm.BgGray, "background-color: gray"},
	"bgGrey":    {pterm.BgGray, "background-color: gray"},

	"bgBlackBright":   {pterm.BgDarkGray, "background-color: dimgray"},
	"bgRedBright":     {pterm.BgLightRed, "background-color: #ff5555"},
	"bgGreenBright":   {pterm.BgLightGreen, "background-color: #55ff55"},
	"bgYellowBright":  {pterm.BgLightYellow, "background-color: #ffff55"},
	"bgBlueBright":    {pterm.BgLightBlue, "background-color: #5555ff"},
	"bgMagentaBright": {pterm.BgLightMagenta, "background-color: #ff55ff"},
	"bgCyanBright":    {pterm.BgLightCyan, "background-color: #55ffff"},
	"bgWhiteBright":   {pterm.BgLightWhite, "background-color: #ffffff"},
}

// Terminal returns the terminal decoration for name. Names missing from the
// base table are resolved through the tcell colour names ("orange",
// "dodgerblue", "#ff8800"); a "bg" prefix selects the background.
func Terminal(name string) (Func, bool) {
	if e, ok := table[name]; ok {
		c := e.color
		return func(text string) string { return c.Sprint(text) }, true
	}

	color, background, ok := extended(name)
	if !ok {
		return nil, false
	}

	r, g, b := color.RGB()
	rgb := pterm.NewRGB(uint8(r), uint8(g), uint8(b), background)

	return func(text string) string { return rgb.Sprint(text) }, true
}

// CSS returns the console declaration for name.
func CSS(name string) (string, bool) {
	if e, ok := table[name]; ok {
		return e.css, e.css != ""
	}

	color, background, ok := extended(name)
	if !ok {
		return "", false
	}

	prop := "color"
	if background {
		prop = "background-color"
	}

	return fmt.Sprintf("%s: #%06x", prop, color.Hex()), true
}

// Known reports whether name resolves on the terminal.
func Known(name string) bool {
	_, ok := Terminal(name)

	return ok
}

// Filter drops the names that do not resolve, keeping order.
func Filter(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if Known(name) {
			out = append(out, name)
		}
	}

	return out
}

// Names lists the base style names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Highlight renders a [[highlighted]] segment on a terminal.
func Highlight(text string) string {
	return pterm.NewStyle(pterm.Underscore, pterm.FgYellow).Sprint(text)
}

func extended(name string) (tcell.Color, bool, bool) {
	background := false
	lookup := name
	if len(name) > 2 && strings.HasPrefix(name, "bg") {
		background = true
		lookup = name[2:]
	}

	lookup = strings.ToLower(lookup)
	if _, ok := tcell.ColorNames[lookup]; !ok && !strings.HasPrefix(lookup, "#") {
		return tcell.ColorDefault, false, false
	}

	color := tcell.GetColor(lookup)
	if color == tcell.ColorDefault || !color.Valid() {
		return tcell.ColorDefault, false, false
	}

	return color.TrueColor(), background, true
}
