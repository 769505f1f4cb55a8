package generator

import "github.com/katalvlaran/casegen/model"

// Alphabets by character set.
const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
)

// Alphabet returns the characters a string constraint draws from. An
// unknown or empty set yields "".
func Alphabet(c *model.StringConstraint) []rune {
	switch c.CharSet {
	case model.CharsLowercase, "":
		return []rune(lowercase)
	case model.CharsUppercase:
		return []rune(uppercase)
	case model.CharsDigits:
		return []rune(digits)
	case model.CharsAlphanumeric:
		return []rune(lowercase + uppercase + digits)
	case model.CharsCustom:
		return []rune(c.CustomCharSet)
	}
	return nil
}

// String draws a string for v. Length resolves like an array size;
// characters are drawn independently from Alphabet(c), or from lowercase
// letters when that is empty.
func (g *Generator) String(v model.Variable, c *model.StringConstraint, values model.Values) model.Text {
	n := g.size(v, sizeSpec{
		what:      "length",
		mode:      c.LengthType,
		linked:    c.LinkedVariable,
		min:       c.MinLength,
		max:       c.MaxLength,
		defMin:    defaultMinSize,
		defMax:    defaultMaxSize,
		defLinked: defaultLinkedSize,
	}, values)

	alphabet := Alphabet(c)
	if len(alphabet) == 0 {
		g.note(v, "character set %q is empty, using lowercase", c.CharSet)
		alphabet = []rune(lowercase)
	}

	out := make([]rune, n)
	for i := range out {
		out[i] = alphabet[g.intn(len(alphabet))]
	}

	return model.Text(out)
}
