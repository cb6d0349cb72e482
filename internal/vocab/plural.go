package vocab

import "strings"

// irregulars holds nouns whose plural the suffix rules get wrong.
var irregulars = map[string]string{
	"lápis": "lápis",
	"mão":   "mãos",
	"pão":   "pães",
	"real":  "reais",
}

// Pluralize inflects noun for count following Portuguese orthography
// rules keyed on the word ending. The rules are purely suffix-based:
//
//	-ão → -ões    -m → -ns    -l → -is    -r/-z/-s → +es    else +s
func Pluralize(noun string, count int) string {
	if count == 1 || count == -1 || noun == "" {
		return noun
	}
	if p, ok := irregulars[noun]; ok {
		return p
	}

	switch {
	case strings.HasSuffix(noun, "ão"):
		return strings.TrimSuffix(noun, "ão") + "ões"
	case strings.HasSuffix(noun, "m"):
		return strings.TrimSuffix(noun, "m") + "ns"
	case strings.HasSuffix(noun, "l"):
		return strings.TrimSuffix(noun, "l") + "is"
	case strings.HasSuffix(noun, "r"), strings.HasSuffix(noun, "z"), strings.HasSuffix(noun, "s"):
		return noun + "es"
	default:
		return noun + "s"
	}
}
