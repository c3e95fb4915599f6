package currency

import "sort"

// WordInfo describes one spelled-out numeral word. Multiplier words
// (thousand/million/...) scale the chunk accumulated before them.
type WordInfo struct {
	Value        float64
	IsMultiplier bool
}

// numberWords covers English, Russian and Ukrainian numerals up to the
// hundreds plus the thousand/million/billion multipliers, including the
// gendered and abbreviated variants that show up in chat.
var numberWords = map[string]WordInfo{
	// English units and teens
	"a": {1, false}, "an": {1, false}, "one": {1, false}, "two": {2, false},
	"three": {3, false}, "four": {4, false}, "five": {5, false},
	"six": {6, false}, "seven": {7, false}, "eight": {8, false},
	"nine": {9, false}, "ten": {10, false}, "eleven": {11, false},
	"twelve": {12, false}, "thirteen": {13, false}, "fourteen": {14, false},
	"fifteen": {15, false}, "sixteen": {16, false}, "seventeen": {17, false},
	"eighteen": {18, false}, "nineteen": {19, false},

	// English tens and hundred
	"twenty": {20, false}, "thirty": {30, false}, "forty": {40, false},
	"fifty": {50, false}, "sixty": {60, false}, "seventy": {70, false},
	"eighty": {80, false}, "ninety": {90, false}, "hundred": {100, false},

	// Zero
	"zero": {0, false}, "ноль": {0, false}, "нуль": {0, false},

	// Russian/Ukrainian units
	"один": {1, false}, "одна": {1, false}, "одне": {1, false},
	"два": {2, false}, "две": {2, false}, "дві": {2, false},
	"три": {3, false}, "четыре": {4, false}, "чотири": {4, false},
	"пять": {5, false}, "п'ять": {5, false},
	"шесть": {6, false}, "шість": {6, false},
	"семь": {7, false}, "сім": {7, false},
	"восемь": {8, false}, "вісім": {8, false},
	"девять": {9, false}, "дев'ять": {9, false},
	"десять": {10, false},

	// Russian/Ukrainian teens
	"одиннадцать": {11, false}, "одинадцять": {11, false},
	"двенадцать": {12, false}, "дванадцять": {12, false},
	"тринадцать": {13, false}, "тринадцять": {13, false},
	"четырнадцать": {14, false}, "чотирнадцять": {14, false},
	"пятнадцать": {15, false}, "п'ятнадцять": {15, false},
	"шестнадцать": {16, false}, "шістнадцять": {16, false},
	"семнадцать": {17, false}, "сімнадцять": {17, false},
	"восемнадцать": {18, false}, "вісімнадцять": {18, false},
	"девятнадцать": {19, false}, "дев'ятнадцять": {19, false},

	// Russian/Ukrainian tens
	"двадцать": {20, false}, "двадцять": {20, false},
	"тридцать": {30, false}, "тридцять": {30, false},
	"сорок":     {40, false},
	"пятьдесят": {50, false}, "п'ятдесят": {50, false},
	"шестьдесят": {60, false}, "шістдесят": {60, false},
	"семьдесят": {70, false}, "сімдесят": {70, false},
	"восемьдесят": {80, false}, "вісімдесят": {80, false},
	"девяносто": {90, false}, "дев'яносто": {90, false},

	// Russian/Ukrainian hundreds
	"сто":    {100, false},
	"двести": {200, false}, "двісті": {200, false},
	"триста":    {300, false},
	"четыреста": {400, false}, "чотириста": {400, false},
	"пятьсот": {500, false}, "п'ятсот": {500, false},
	"шестьсот": {600, false}, "шістсот": {600, false},
	"семьсот": {700, false}, "сімсот": {700, false},
	"восемьсот": {800, false}, "вісімсот": {800, false},
	"девятьсот": {900, false}, "дев'ятсот": {900, false},

	// Multipliers
	"тысяча": {1_000, true}, "тысячи": {1_000, true}, "тысяч": {1_000, true},
	"тыс": {1_000, true}, "тыщ": {1_000, true},
	"тисяча": {1_000, true}, "тисячі": {1_000, true}, "тисяч": {1_000, true},
	"thousand": {1_000, true},
	"миллион":  {1_000_000, true}, "миллиона": {1_000_000, true},
	"миллионов": {1_000_000, true}, "мільйон": {1_000_000, true},
	"млн": {1_000_000, true}, "million": {1_000_000, true},
	"миллиард": {1_000_000_000, true}, "миллиарда": {1_000_000_000, true},
	"миллиардов": {1_000_000_000, true}, "мільярд": {1_000_000_000, true},
	"млрд": {1_000_000_000, true}, "billion": {1_000_000_000, true},
}

// connectorWords are skipped inside a numeral phrase without affecting
// whether the phrase counts as resolved.
var connectorWords = map[string]bool{
	"and": true,
	"и":   true,
}

// zeroWords are the only words that make a bare zero a valid amount.
var zeroWords = map[string]bool{
	"zero": true,
	"ноль": true,
	"нуль": true,
}

// multiplierWords returns every multiplier word, longest first, for
// building regex alternations that prefer the longest match.
func multiplierWords() []string {
	return lexiconWords(func(info WordInfo) bool { return info.IsMultiplier })
}

// numeralWords returns every lexicon word (numerals and multipliers)
// plus connectors, longest first.
func numeralWords() []string {
	words := lexiconWords(func(WordInfo) bool { return true })
	for w := range connectorWords {
		words = append(words, w)
	}
	sortLongestFirst(words)
	return words
}

func lexiconWords(keep func(WordInfo) bool) []string {
	var words []string
	for w, info := range numberWords {
		if keep(info) {
			words = append(words, w)
		}
	}
	sortLongestFirst(words)
	return words
}

func sortLongestFirst(words []string) {
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
}
