package repository

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tirasundara/lotto-reward/internal/domain"
	"github.com/tirasundara/lotto-reward/pkg/fileutil"
)

var ticketHeaderFields = []string{"n1", "n2", "n3", "n4", "n5", "n6"}

var _ domain.TicketRepository = (*CSVTicketRepository)(nil)

// CSVTicketRepository implements the TicketRepository interface for CSV files.
// Rows that are not valid tickets are logged and skipped.
type CSVTicketRepository struct {
	FilePath string
	logger   zerolog.Logger
}

// NewCSVTicketRepository creates a new CSVTicketRepository
func NewCSVTicketRepository(filePath string, logger zerolog.Logger) *CSVTicketRepository {
	return &CSVTicketRepository{
		FilePath: filePath,
		logger:   logger,
	}
}

func (r *CSVTicketRepository) GetTickets() ([]domain.Ticket, error) {
	c := &ticketCollector{logger: r.logger}

	reader := fileutil.NewCSVReader(r.FilePath)
	if err := reader.ReadAndProcessByRow(c.readHeader, c.processRow); err != nil {
		return nil, fmt.Errorf("reading tickets: %w", err)
	}

	return c.tickets, nil
}

// ReadTickets parses tickets from any CSV source using the same rules as the file repository
func ReadTickets(src io.Reader, logger zerolog.Logger) ([]domain.Ticket, error) {
	c := &ticketCollector{logger: logger}

	if err := fileutil.ProcessCSV(src, c.readHeader, c.processRow); err != nil {
		return nil, fmt.Errorf("reading tickets: %w", err)
	}

	return c.tickets, nil
}

var _ domain.TicketRepository = (*ReaderTicketRepository)(nil)

// ReaderTicketRepository implements the TicketRepository interface for an
// already open CSV stream such as stdin. The stream is consumed once.
type ReaderTicketRepository struct {
	src    io.Reader
	logger zerolog.Logger
}

func NewReaderTicketRepository(src io.Reader, logger zerolog.Logger) *ReaderTicketRepository {
	return &ReaderTicketRepository{
		src:    src,
		logger: logger,
	}
}

func (r *ReaderTicketRepository) GetTickets() ([]domain.Ticket, error) {
	return ReadTickets(r.src, r.logger)
}

type ticketCollector struct {
	columnMap map[string]int
	tickets   []domain.Ticket
	logger    zerolog.Logger
}

func (c *ticketCollector) readHeader(header []string) error {
	columnMap, err := createHeaderMap(header, ticketHeaderFields)
	if err != nil {
		return fmt.Errorf("mapping CSV columns: %w", err)
	}
	c.columnMap = columnMap
	return nil
}

func (c *ticketCollector) processRow(line int, row []string) error {
	ticket, err := parseTicketRow(row, c.columnMap)
	if err != nil {
		// Log but continue processing other rows
		c.logger.Warn().Err(err).Int("line", line).Msg("skipping invalid ticket")
		return nil
	}

	c.tickets = append(c.tickets, ticket)
	return nil
}

func parseTicketRow(row []string, columnMap map[string]int) (domain.Ticket, error) {
	// Skip if row doesn't have enough fields
	if len(row) <= maxColumnIndex(columnMap) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(ticketHeaderFields), len(row))
	}

	numbers := make([]int, 0, len(ticketHeaderFields))
	for _, column := range ticketHeaderFields {
		n, err := strconv.Atoi(strings.TrimSpace(row[columnMap[column]]))
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", column, err)
		}
		numbers = append(numbers, n)
	}

	lotto, err := domain.NewLotto(numbers)
	if err != nil {
		return nil, err
	}
	return lotto, nil
}
