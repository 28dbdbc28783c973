package domain

import (
	"errors"
	"fmt"
)

// Lotto number rules
const (
	NumbersPerTicket = 6
	MinNumber        = 1
	MaxNumber        = 45
)

var (
	ErrInvalidTicketSize     = errors.New("a ticket must have exactly 6 numbers")
	ErrNumberOutOfRange      = errors.New("lotto numbers must be between 1 and 45")
	ErrDuplicateNumber       = errors.New("lotto numbers must not repeat")
	ErrInvalidBonusNumber    = errors.New("bonus number must be between 1 and 45")
	ErrBonusInWinningNumbers = errors.New("bonus number must not be one of the winning numbers")
)

// Ticket is one purchased lottery entry
type Ticket interface {
	Numbers() []int
}

// Lotto is the default Ticket implementation
type Lotto struct {
	numbers []int
}

// NewLotto validates the numbers and returns a Lotto holding its own copy of them
func NewLotto(numbers []int) (Lotto, error) {
	if err := validateNumbers(numbers); err != nil {
		return Lotto{}, err
	}

	return Lotto{numbers: copyNumbers(numbers)}, nil
}

// Numbers returns a copy of the ticket numbers in purchase order
func (l Lotto) Numbers() []int {
	return copyNumbers(l.numbers)
}

func validateNumbers(numbers []int) error {
	if len(numbers) != NumbersPerTicket {
		return fmt.Errorf("%w: got %d", ErrInvalidTicketSize, len(numbers))
	}

	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < MinNumber || n > MaxNumber {
			return fmt.Errorf("%w: %d", ErrNumberOutOfRange, n)
		}
		if seen[n] {
			return fmt.Errorf("%w: %d", ErrDuplicateNumber, n)
		}
		seen[n] = true
	}

	return nil
}

func copyNumbers(numbers []int) []int {
	out := make([]int, len(numbers))
	copy(out, numbers)
	return out
}
