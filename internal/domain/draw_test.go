package domain_test

import (
	"errors"
	"testing"

	"github.com/tirasundara/lotto-reward/internal/domain"
)

func TestNewDraw(t *testing.T) {
	draw, err := domain.NewDraw([]int{1, 2, 3, 4, 5, 6}, 7)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if draw.BonusNumber() != 7 {
		t.Errorf("Expected bonus number to be 7, got %d", draw.BonusNumber())
	}

	numbers := draw.WinningNumbers()
	if len(numbers) != 6 || numbers[0] != 1 || numbers[5] != 6 {
		t.Errorf("Expected winning numbers [1 2 3 4 5 6], got %v", numbers)
	}

	numbers[0] = 45
	if draw.WinningNumbers()[0] != 1 {
		t.Errorf("Expected draw to be immutable, got %v", draw.WinningNumbers())
	}
}

func TestNewDraw_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		bonus   int
		wantErr error
	}{
		{name: "bonus out of range", numbers: []int{1, 2, 3, 4, 5, 6}, bonus: 46, wantErr: domain.ErrInvalidBonusNumber},
		{name: "bonus zero", numbers: []int{1, 2, 3, 4, 5, 6}, bonus: 0, wantErr: domain.ErrInvalidBonusNumber},
		{name: "bonus among winning numbers", numbers: []int{1, 2, 3, 4, 5, 6}, bonus: 6, wantErr: domain.ErrBonusInWinningNumbers},
		{name: "duplicate winning number", numbers: []int{1, 1, 3, 4, 5, 6}, bonus: 7, wantErr: domain.ErrDuplicateNumber},
		{name: "short winning numbers", numbers: []int{1, 2, 3}, bonus: 7, wantErr: domain.ErrInvalidTicketSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewDraw(tc.numbers, tc.bonus)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}
