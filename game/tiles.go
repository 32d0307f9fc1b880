package game

import "math/rand/v2"

// Standard 100-tile letter distribution, weighted toward common letters.
var tileCounts = map[string]int{
	"A": 9, "B": 2, "C": 2, "D": 4, "E": 12, "F": 2, "G": 3, "H": 2,
	"I": 9, "J": 1, "K": 1, "L": 4, "M": 2, "N": 6, "O": 8, "P": 2,
	"Q": 1, "R": 6, "S": 4, "T": 6, "U": 4, "V": 2, "W": 2, "X": 1,
	"Y": 2, "Z": 1,
}

// Per-letter point values, weighted inversely to frequency.
var tileScores = map[string]int{
	"A": 1, "E": 1, "I": 1, "O": 1, "U": 1, "L": 1, "N": 1, "S": 1, "T": 1, "R": 1,
	"D": 2, "G": 2,
	"B": 3, "C": 3, "M": 3, "P": 3,
	"F": 4, "H": 4, "V": 4, "W": 4, "Y": 4,
	"K": 5,
	"J": 8, "X": 8,
	"Q": 10, "Z": 10,
}

func TileScore(letter string) int {
	return tileScores[letter]
}

// Bag is the shuffled draw pile for one round.
type Bag struct {
	letters []string
}

func NewBag() *Bag {
	letters := make([]string, 0, 100)
	for letter, count := range tileCounts {
		for i := 0; i < count; i++ {
			letters = append(letters, letter)
		}
	}
	rand.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	return &Bag{letters: letters}
}

// Draw removes one letter from the end of the shuffled pile. The second
// return value is false once the bag is exhausted.
func (b *Bag) Draw() (string, bool) {
	if len(b.letters) == 0 {
		return "", false
	}
	letter := b.letters[len(b.letters)-1]
	b.letters = b.letters[:len(b.letters)-1]
	return letter, true
}

func (b *Bag) Remaining() int {
	return len(b.letters)
}
