package repository_test

import (
	"errors"
	"testing"

	"github.com/tirasundara/lotto-reward/internal/domain"
	"github.com/tirasundara/lotto-reward/internal/repository"
)

func TestStaticDrawRepository_GetDraw(t *testing.T) {
	repo := repository.NewStaticDrawRepository(" 1, 2,3,4,5 ,6", 7)

	draw, err := repo.GetDraw()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if draw.BonusNumber() != 7 {
		t.Errorf("Expected bonus number 7, got %d", draw.BonusNumber())
	}
	if got := draw.WinningNumbers(); len(got) != 6 || got[4] != 5 {
		t.Errorf("Expected winning numbers [1 2 3 4 5 6], got %v", got)
	}
}

func TestStaticDrawRepository_Invalid(t *testing.T) {
	_, err := repository.NewStaticDrawRepository("1,2,3,4,5,x", 7).GetDraw()
	if err == nil {
		t.Errorf("Expected an error for a non-numeric winning number")
	}

	_, err = repository.NewStaticDrawRepository("1,2,3,4,5,6", 6).GetDraw()
	if !errors.Is(err, domain.ErrBonusInWinningNumbers) {
		t.Errorf("Expected ErrBonusInWinningNumbers, got %v", err)
	}
}

func TestParseNumbers(t *testing.T) {
	numbers, err := repository.ParseNumbers("10, 20,30,,")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(numbers) != 3 || numbers[2] != 30 {
		t.Errorf("Expected [10 20 30], got %v", numbers)
	}
}
