package words

import "strings"

const (
	MinLength = 3
	MaxLength = 6
)

// Validator reports whether a candidate spells a playable word of the
// required length. Implementations must be safe for concurrent use and
// cheap enough to call inside claim arbitration.
type Validator interface {
	Valid(word string, length int) bool
}

// Dictionary is an in-memory word list indexed by length.
type Dictionary struct {
	byLength map[int]map[string]struct{}
}

func NewDictionary() *Dictionary {
	d := &Dictionary{byLength: make(map[int]map[string]struct{})}
	d.load(3, threeLetterWords)
	d.load(4, fourLetterWords)
	d.load(5, fiveLetterWords)
	d.load(6, sixLetterWords)
	return d
}

func (d *Dictionary) load(length int, list []string) {
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		set[w] = struct{}{}
	}
	d.byLength[length] = set
}

func (d *Dictionary) Valid(word string, length int) bool {
	if length < MinLength || length > MaxLength {
		return false
	}

	w := strings.ToUpper(strings.TrimSpace(word))
	if len(w) != length {
		return false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	_, ok := d.byLength[length][w]
	return ok
}
