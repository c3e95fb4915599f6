package currency

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
)

var (
	// "1k200" style: a number, one thousands letter, then up to three
	// trailing digits filling the lower positions.
	infixThousandsRE = regexp.MustCompile(`^(\d+(?:\.\d+)?)[kк](\d{1,3})$`)

	// A number with a magnitude suffix. Alternation is longest-first so
	// "тыс" wins over "т".
	suffixComponentRE = regexp.MustCompile(`(\d+(?:\.\d+)?)(кк|kk|тыс|млн|млрд|трлн|k|к|m|м|b|б|t|т)`)

	// Digit groups joined by dots, used to decide whether dots are
	// thousands separators or a decimal point.
	dottedGroupsRE = regexp.MustCompile(`^\d+(?:\.\d+)+$`)
)

// ParseAmountWithSuffix parses a numeric amount token: plain numbers,
// separator-grouped numbers ("1,234,567.89"), magnitude shorthand
// ("2.5k", "1m2k300", "5кк"), and arithmetic expressions ("100*2").
func ParseAmountWithSuffix(token string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(token))
	s = strings.NewReplacer("_", "", " ", "", " ", "", ",", ".").Replace(s)
	if s == "" {
		return 0, false
	}

	if strings.ContainsAny(s, "*/") {
		return evaluateAmountExpression(s)
	}

	s = stripThousandsSeparators(s)

	if m := infixThousandsRE.FindStringSubmatch(s); m != nil {
		head, ok := ParseAmountWithSuffix(m[1])
		if !ok {
			return 0, false
		}
		tail, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, false
		}
		return head*1_000 + tail, true
	}

	if v, ok := parseSuffixChain(s); ok {
		return v, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isValidFloat(v) {
		return 0, false
	}
	return v, true
}

// parseSuffixChain handles chained magnitude components ("1m2k", "5кк")
// summed left to right, with an optional plain-number tail.
func parseSuffixChain(s string) (float64, bool) {
	matches := suffixComponentRE.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 || matches[0][0] != 0 {
		return 0, false
	}

	var total float64
	end := 0
	for _, m := range matches {
		if m[0] != end {
			return 0, false
		}
		num, err := strconv.ParseFloat(s[m[2]:m[3]], 64)
		if err != nil {
			return 0, false
		}
		mult, ok := magnitudeMultiplier(s[m[4]:m[5]])
		if !ok {
			return 0, false
		}
		total += num * mult
		end = m[1]
	}

	if tail := s[end:]; tail != "" {
		if containsLetter(tail) {
			return 0, false
		}
		v, err := strconv.ParseFloat(tail, 64)
		if err != nil {
			return 0, false
		}
		total += v
	}

	if !isValidFloat(total) {
		return 0, false
	}
	return total, true
}

func magnitudeMultiplier(suffix string) (float64, bool) {
	switch suffix {
	case "k", "к", "тыс":
		return 1_000, true
	case "m", "м", "млн", "kk", "кк":
		return 1_000_000, true
	case "b", "б", "млрд":
		return 1_000_000_000, true
	case "t", "т", "трлн":
		return 1_000_000_000_000, true
	}
	return 0, false
}

// stripThousandsSeparators resolves dot-grouped numbers. A single dot is
// always a decimal point ("1.234" is one point two three four). With two
// or more dots the groups are thousands separators when the last group
// has exactly 3 digits and none exceeds 3; otherwise the final dot is
// the decimal point and the earlier dots are stripped
// ("1.234.567" vs "1.234.567.89").
func stripThousandsSeparators(s string) string {
	if !dottedGroupsRE.MatchString(s) {
		return s
	}
	groups := strings.Split(s, ".")
	if len(groups) < 3 {
		return s
	}

	allSmall := true
	for _, g := range groups {
		if len(g) > 3 {
			allSmall = false
			break
		}
	}
	if allSmall && len(groups[len(groups)-1]) == 3 {
		return strings.Join(groups, "")
	}
	return strings.Join(groups[:len(groups)-1], "") + "." + groups[len(groups)-1]
}

// evaluateAmountExpression evaluates arithmetic amount tokens. Suffixed
// components are expanded to plain numbers first, then the expression is
// compiled and run.
func evaluateAmountExpression(s string) (float64, bool) {
	expanded := suffixComponentRE.ReplaceAllStringFunc(s, func(component string) string {
		v, ok := ParseAmountWithSuffix(component)
		if !ok {
			return component
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	})
	if containsLetter(expanded) {
		return 0, false
	}

	program, err := expr.Compile(expanded)
	if err != nil {
		return 0, false
	}
	result, err := expr.Run(program, nil)
	if err != nil {
		return 0, false
	}

	var v float64
	switch n := result.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	default:
		return 0, false
	}
	if !isValidFloat(v) {
		return 0, false
	}
	return v, true
}
