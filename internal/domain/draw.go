package domain

import "fmt"

// WinningDraw exposes the six winning numbers and the bonus number of one round
type WinningDraw interface {
	WinningNumbers() []int
	BonusNumber() int
}

// Draw is an immutable WinningDraw
type Draw struct {
	winningNumbers []int
	bonusNumber    int
}

// NewDraw validates the winning numbers and the bonus number
func NewDraw(winningNumbers []int, bonusNumber int) (Draw, error) {
	if err := validateNumbers(winningNumbers); err != nil {
		return Draw{}, fmt.Errorf("winning numbers: %w", err)
	}

	if bonusNumber < MinNumber || bonusNumber > MaxNumber {
		return Draw{}, fmt.Errorf("%w: %d", ErrInvalidBonusNumber, bonusNumber)
	}

	for _, n := range winningNumbers {
		if n == bonusNumber {
			return Draw{}, fmt.Errorf("%w: %d", ErrBonusInWinningNumbers, bonusNumber)
		}
	}

	return Draw{
		winningNumbers: copyNumbers(winningNumbers),
		bonusNumber:    bonusNumber,
	}, nil
}

func (d Draw) WinningNumbers() []int {
	return copyNumbers(d.winningNumbers)
}

func (d Draw) BonusNumber() int {
	return d.bonusNumber
}
