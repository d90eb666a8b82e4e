package game

import "hog/dice"

// SelectDice returns the dice for a turn using the package default dice.
// Four-sided dice are used while swapped (Pork Chop), and the dice reroll
// odd outcomes when the score sum triggers Hog Wild.
func SelectDice(score, opponentScore int, diceSwapped bool) dice.Dice {
	return SelectDiceFrom(dice.SixSided, dice.FourSided, score, opponentScore, diceSwapped)
}

// SelectDiceFrom is SelectDice over explicit base dice.
func SelectDiceFrom(six, four dice.Dice, score, opponentScore int, diceSwapped bool) dice.Dice {
	d := six
	if diceSwapped {
		d = four
	}
	if IsHogWild(score, opponentScore) {
		d = dice.Reroll(d)
	}
	return d
}
