package domain

// TicketRepository defines the interface for loading purchased tickets
type TicketRepository interface {
	GetTickets() ([]Ticket, error)
}

// DrawRepository defines the interface for loading the winning draw
type DrawRepository interface {
	GetDraw() (WinningDraw, error)
}
