/*
Package markup converts chat markup into styled component trees, one tree
per output line.

# Dialect

Any element opens a scope. Recognized attributes on any element:

	color="red"          one of the named colors (exact match)
	bold italic ...      presence switches a flag on (obfuscated, bold,
	                     strikethrough, underlined, italic)

Special elements:

	<hover action="show_text" value="markup">   value is converted as markup
	<click action="open_url" value="literal">   value is taken verbatim
	<click shift action="..." value="...">      shift-click instead of click
	<lf/>                                       line break

Unknown elements and attributes are ignored, so the element name is free
to document intent:

	<title color="gold" bold>Welcome</title>

# Whitespace

Character data collapses like rendered HTML: newlines become spaces, runs
of whitespace shrink to one space, whitespace at the start of a line is
dropped and trailing whitespace at the end of a line is trimmed. The
state carries across elements on the same line.

# Lines

By default <lf/> starts a new line. Styles and events open at the break
carry over, so

	<span bold>foo<lf/>bar</span>

yields two bold lines. A line that receives no text and no event is
dropped. With Options.KeepLinefeeds the break becomes a literal "\n"
inside a single line instead.

# Usage

	lines, err := markup.Convert(`<span color="red">Hello</span> world`)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(component.PlainText(line))
	}
*/
package markup
