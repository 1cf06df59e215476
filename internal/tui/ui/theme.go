package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colours of the TUI.
type Theme struct {
	BgColor          tcell.Color
	FgColor          tcell.Color
	BorderColor      tcell.Color
	BorderFocusColor tcell.Color
	TitleColor       tcell.Color
	CounterColor     tcell.Color
	SummaryFg        tcell.Color

	TableHeaderFg tcell.Color
	TableHeaderBg tcell.Color
	TableCursorFg tcell.Color
	TableCursorBg tcell.Color

	CrumbActiveFg   tcell.Color
	CrumbActiveBg   tcell.Color
	CrumbInactiveFg tcell.Color
	CrumbInactiveBg tcell.Color

	MenuKeyColor      tcell.Color
	JumpKeyColor      tcell.Color
	PromptBorderColor tcell.Color

	FlashInfoColor tcell.Color
	FlashOKColor   tcell.Color
	FlashWarnColor tcell.Color
	FlashErrColor  tcell.Color

	// ModuleColors accents views by business module name.
	ModuleColors map[string]tcell.Color
}

// DefaultTheme returns the dark theme.
func DefaultTheme() *Theme {
	green := tcell.NewHexColor(0x3cb371)
	gold := tcell.NewHexColor(0xe3b341)
	steel := tcell.NewHexColor(0x8fa9c2)

	return &Theme{
		BgColor:          tcell.ColorBlack,
		FgColor:          steel,
		BorderColor:      green,
		BorderFocusColor: tcell.ColorPaleGreen,
		TitleColor:       gold,
		CounterColor:     tcell.ColorWheat,
		SummaryFg:        tcell.ColorGray,

		TableHeaderFg: tcell.ColorWhite,
		TableHeaderBg: tcell.ColorBlack,
		TableCursorFg: tcell.ColorBlack,
		TableCursorBg: green,

		CrumbActiveFg:   tcell.ColorBlack,
		CrumbActiveBg:   gold,
		CrumbInactiveFg: tcell.ColorBlack,
		CrumbInactiveBg: steel,

		MenuKeyColor:      green,
		JumpKeyColor:      gold,
		PromptBorderColor: green,

		FlashInfoColor: tcell.ColorWheat,
		FlashOKColor:   tcell.ColorPaleGreen,
		FlashWarnColor: tcell.ColorOrange,
		FlashErrColor:  tcell.ColorOrangeRed,

		ModuleColors: map[string]tcell.Color{
			"CRM":     tcell.ColorDeepSkyBlue,
			"RH":      tcell.ColorMediumPurple,
			"Finance": gold,
		},
	}
}

// LabelColor maps a label style name such as "green" to a color. Empty or
// unknown names use the foreground color.
func (t *Theme) LabelColor(style string) tcell.Color {
	if style == "" {
		return t.FgColor
	}
	if c := tcell.GetColor(style); c != tcell.ColorDefault {
		return c
	}
	return t.FgColor
}

// ModuleColor is the accent of module, or the title color.
func (t *Theme) ModuleColor(module string) tcell.Color {
	if c, ok := t.ModuleColors[module]; ok {
		return c
	}
	return t.TitleColor
}

// Tag renders c for a tview color tag.
func Tag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "-"
	}
	return fmt.Sprintf("#%06x", c.Hex())
}
