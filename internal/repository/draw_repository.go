package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tirasundara/lotto-reward/internal/domain"
)

var _ domain.DrawRepository = (*StaticDrawRepository)(nil)

// StaticDrawRepository implements the DrawRepository interface for a draw
// given on the command line
type StaticDrawRepository struct {
	WinningNumbers string
	BonusNumber    int
}

// NewStaticDrawRepository creates a StaticDrawRepository from "1,2,3,4,5,6" and a bonus number
func NewStaticDrawRepository(winningNumbers string, bonusNumber int) *StaticDrawRepository {
	return &StaticDrawRepository{
		WinningNumbers: winningNumbers,
		BonusNumber:    bonusNumber,
	}
}

func (r *StaticDrawRepository) GetDraw() (domain.WinningDraw, error) {
	numbers, err := ParseNumbers(r.WinningNumbers)
	if err != nil {
		return nil, fmt.Errorf("parsing winning numbers: %w", err)
	}

	draw, err := domain.NewDraw(numbers, r.BonusNumber)
	if err != nil {
		return nil, err
	}
	return draw, nil
}

// ParseNumbers parses a comma separated list of numbers
func ParseNumbers(s string) ([]int, error) {
	var numbers []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", field, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
