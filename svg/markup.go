package svg

import "strconv"

// Markup is assembled by plain concatenation: each attribute carries a
// trailing space so fragments chain without separators. Values are not
// escaped.

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func attribute(name, value string) string {
	return name + "=\"" + value + "\" "
}

func elemStart(name string) string {
	return "\t<" + name + " "
}

func elemEnd(name string) string {
	return "</" + name + ">\n"
}

const emptyElemEnd = "/>\n"
