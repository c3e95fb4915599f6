package currency

import "strings"

// ParseNumberWords turns a spelled-out numeral phrase ("two hundred
// fifty", "двадцать пять") into its value. The second return is false
// when no word in the phrase resolved to a number.
func ParseNumberWords(phrase string) (float64, bool) {
	var total, chunk float64
	resolved := false
	sawZero := false

	for _, field := range strings.Fields(strings.ToLower(phrase)) {
		word := strings.Trim(field, ".,!?;:()\"'")
		if word == "" || connectorWords[word] {
			continue
		}

		info, ok := numberWords[word]
		if !ok {
			continue
		}

		switch {
		case info.IsMultiplier:
			if chunk == 0 {
				chunk = 1
			}
			total += chunk * info.Value
			chunk = 0
			resolved = true
		case info.Value == 100 && chunk > 0:
			chunk *= 100
			resolved = true
		case zeroWords[word]:
			sawZero = true
		default:
			chunk += info.Value
			resolved = true
		}
	}

	if resolved {
		return total + chunk, true
	}
	if sawZero {
		return 0, true
	}
	return 0, false
}
