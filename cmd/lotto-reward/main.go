package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/tirasundara/lotto-reward/internal/config"
	"github.com/tirasundara/lotto-reward/internal/domain"
	"github.com/tirasundara/lotto-reward/internal/logging"
	"github.com/tirasundara/lotto-reward/internal/matcher"
	"github.com/tirasundara/lotto-reward/internal/report"
	"github.com/tirasundara/lotto-reward/internal/repository"
	"github.com/tirasundara/lotto-reward/internal/service"
)

const stdinPath = "-"

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Command-line flags
	var (
		ticketsFile    string
		winningNumbers string
		bonusNumber    int
		outputFormat   string
		outputFile     string
		prettyPrint    bool
	)

	flag.StringVar(&ticketsFile, "tickets", "", "Path to purchased tickets CSV file (columns n1..n6), or - for stdin")
	flag.StringVar(&winningNumbers, "winning", "", "Comma-separated winning numbers, e.g. 1,2,3,4,5,6")
	flag.IntVar(&bonusNumber, "bonus", 0, "Bonus number")
	flag.StringVar(&outputFormat, "format", cfg.Output.Format, "Output format: text or json")
	flag.StringVar(&outputFile, "output", "", "Path to output file (if empty, writes to stdout)")
	flag.BoolVar(&prettyPrint, "pretty", cfg.Output.Pretty, "Pretty print JSON output")

	flag.Parse()

	if ticketsFile == "" {
		exitWithError("Tickets file path is required")
	}
	if winningNumbers == "" {
		exitWithError("Winning numbers are required")
	}

	logger := logging.New(cfg.LogLevel, true, "lotto-reward")

	var drawRepo domain.DrawRepository = repository.NewStaticDrawRepository(winningNumbers, bonusNumber)
	ticketRepo := newTicketRepository(ticketsFile, os.Stdin, logger)

	draw, err := drawRepo.GetDraw()
	if err != nil {
		exitWithError(fmt.Sprintf("Invalid draw: %v", err))
	}

	tickets, err := ticketRepo.GetTickets()
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to load tickets: %v", err))
	}

	currency, err := report.NewCurrencyFormatterFromLocale(cfg.Currency.Locale, cfg.Currency.Suffix)
	if err != nil {
		exitWithError(fmt.Sprintf("Invalid currency settings: %v", err))
	}
	rows := report.NewStatisticsFormatter(currency)

	calculator := service.NewRewardCalculator(draw,
		service.WithMatcher(matcher.NewDrawMatcher(draw)),
		service.WithTicketPrice(cfg.TicketPriceDecimal()),
		service.WithRowFormatter(rows),
		service.WithLogger(logger),
	)
	result := calculator.Calculate(tickets)

	// Format the output
	var formatter report.OutputFormatter
	switch outputFormat {
	case "text":
		formatter = report.NewTextFormatter(rows)
	case "json":
		formatter = report.NewJSONFormatter(prettyPrint, rows)
	default:
		exitWithError(fmt.Sprintf("Unsupported output format: %s", outputFormat))
		return
	}

	output, err := formatter.Format(result)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to format output: %v", err))
	}

	// Output the result
	if outputFile != "" {
		// If no extension is provided, add the formatter's default extension
		if !strings.Contains(outputFile, ".") {
			outputFile = fmt.Sprintf("%s.%s", outputFile, formatter.FileExtension())
		}

		if err := os.WriteFile(outputFile, output, 0644); err != nil {
			exitWithError(fmt.Sprintf("Failed to write output file: %v", err))
		}
		return
	}

	fmt.Println(string(output))
}

// newTicketRepository reads tickets from stdin when path is "-"
func newTicketRepository(path string, stdin io.Reader, logger zerolog.Logger) domain.TicketRepository {
	if path == stdinPath {
		return repository.NewReaderTicketRepository(stdin, logger)
	}
	return repository.NewCSVTicketRepository(path, logger)
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
