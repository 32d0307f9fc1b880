package game

import "math"

const ratingK = 32

// ratingDeltas computes the ELO adjustments for a winner/loser pair using
// the logistic expected-score model. The winner delta is always >= 0 and
// the loser delta <= 0; magnitudes shrink when the favorite wins and grow
// on upsets, bounded by K.
func ratingDeltas(winnerRating, loserRating int) (int, int) {
	expectedWinner := 1 / (1 + math.Pow(10, float64(loserRating-winnerRating)/400))
	deltaWinner := int(math.Round(ratingK * (1 - expectedWinner)))
	deltaLoser := int(math.Round(ratingK * (0 - (1 - expectedWinner))))
	return deltaWinner, deltaLoser
}
