package pace

// Theme is the glyph set a BarRenderer draws with.
//
// Blocks holds nine glyphs graded from empty (index 0) to full (index 8);
// the partially filled cell at the bar's leading edge picks the glyph
// matching its fraction. Themes are plain data passed to the one renderer
// implementation, so new looks need no new code.
type Theme struct {
	// Blocks are the fill glyphs, empty to full.
	Blocks [9]string

	// RightPad is printed after the closing bracket.
	RightPad string

	// LeftBracket and RightBracket frame the bar. Both may be empty.
	LeftBracket  string
	RightBracket string
}

// ThemeUnicode is the default look.
var ThemeUnicode = Theme{
	Blocks:   [9]string{" ", ".", ":", "-", "=", "#", "#", "#", "#"},
	RightPad: "|",
}

// ThemeASCII restricts output to 7-bit characters for dumb terminals and
// CI logs.
var ThemeASCII = Theme{
	Blocks:       [9]string{" ", "-", "-", "=", "=", "=", "#", "#", "#"},
	RightPad:     "|",
	LeftBracket:  "[",
	RightBracket: "]",
}

// ThemeCircles grades with circle glyphs.
var ThemeCircles = Theme{
	Blocks:   [9]string{" ", ".", "o", "o", "o", "o", "o", "o", "O"},
	RightPad: " ",
}

// ThemeBraille grades with dot glyphs.
var ThemeBraille = Theme{
	Blocks:   [9]string{" ", ".", ".", ":", ":", ":", "*", "*", "*"},
	RightPad: " ",
}
