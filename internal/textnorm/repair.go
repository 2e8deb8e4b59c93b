package textnorm

import "unicode"

// minPairSample is the smallest number of aligned letter pairs worth judging;
// below it the corruption ratio is meaningless.
const minPairSample = 4

// isDoubled reports whether the text carries the systematic duplication
// signature some PDF converters produce ("TThhiiss iiss aa tteesstt").
// Pairs are aligned per word so the metric stays low on ordinary prose with
// natural doubles ("committee", "all"): those words pair as (c,o)(m,m)(i,t)...
// and contribute mostly unequal pairs, while duplicated text pairs every
// letter with its own copy.
func (n *Normalizer) isDoubled(text string) bool {
	var pairs, dups int
	for _, word := range splitWords(text) {
		for i := 0; i+1 < len(word); i += 2 {
			a, b := word[i], word[i+1]
			if !unicode.IsLetter(a) || !unicode.IsLetter(b) {
				continue
			}
			pairs++
			if a == b {
				dups++
			}
		}
	}
	if pairs < minPairSample {
		return false
	}
	return float64(dups)/float64(pairs) > n.doubledThreshold
}

// collapseRuns repairs duplicated text by collapsing runs of 3 identical
// word characters to 1, then runs of 2 to 1, across the whole text.
func collapseRuns(text string) string {
	return collapseRunsOf(collapseRunsOf(text, 3), 2)
}

func collapseRunsOf(text string, n int) string {
	runes := []rune(text)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); {
		if isWordRune(runes[i]) && i+n <= len(runes) && sameRun(runes[i:i+n]) {
			out = append(out, runes[i])
			i += n
			continue
		}
		out = append(out, runes[i])
		i++
	}
	return string(out)
}

func sameRun(run []rune) bool {
	for _, r := range run[1:] {
		if r != run[0] {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func splitWords(text string) [][]rune {
	var words [][]rune
	var cur []rune
	for _, r := range text {
		if unicode.IsSpace(r) {
			if len(cur) > 0 {
				words = append(words, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}
	return words
}
