package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/GlebRadaev/loanapp/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=console.go -destination=mock_console.go -package=console

const (
	promptLoanAmount  = "Enter Loan Amount in GBP:"
	promptAssetValue  = "Enter Asset Value in GBP:"
	promptCreditScore = "Enter Credit Score [1-999]:"
	promptAction      = "Press p to process your loan application, x to exit, and any other key to cancel this application."
	promptContinue    = "Press x to exit, and any other key to make another loan application."
	finished          = "Finished"
)

type Service interface {
	Apply(ctx context.Context, req domain.LoanApplicationRequest) (domain.Response, error)
	Metrics(ctx context.Context) (domain.MetricsSnapshot, error)
}

// Console runs the interactive loan application loop over line based input.
type Console struct {
	service Service
	in      *bufio.Scanner
	out     io.Writer
}

func New(service Service, in io.Reader, out io.Writer) *Console {
	return &Console{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops until the user exits, the input ends or ctx is done.
// Returns nil in every case except a failed service call.
func (c *Console) Run(ctx context.Context) error {
	defer c.println(finished)

	for {
		if ctx.Err() != nil {
			return nil
		}

		loan, ok := c.ask(promptLoanAmount)
		if !ok {
			return nil
		}
		asset, ok := c.ask(promptAssetValue)
		if !ok {
			return nil
		}
		score, ok := c.ask(promptCreditScore)
		if !ok {
			return nil
		}
		req := domain.NewLoanApplicationRequest(ParseAmount(loan), ParseAmount(asset), ParseCreditScore(score))

		action, ok := c.ask(promptAction)
		if !ok {
			return nil
		}
		switch keyOf(action) {
		case "x":
			return nil
		case "p":
		default:
			zap.L().Debug("loan application cancelled")
			continue
		}

		if err := c.process(ctx, req); err != nil {
			return err
		}

		answer, ok := c.ask(promptContinue)
		if !ok || keyOf(answer) == "x" {
			return nil
		}
	}
}

func (c *Console) process(ctx context.Context, req domain.LoanApplicationRequest) error {
	resp, err := c.service.Apply(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to apply loan application: %w", err)
	}

	switch resp := resp.(type) {
	case domain.Processed:
		c.println("Your loan application was " + resp.Status.String())
		return c.displayMetrics(ctx)
	case domain.UnableToProcess:
		c.println(resp.Reason)
	}
	return nil
}

func (c *Console) displayMetrics(ctx context.Context) error {
	snapshot, err := c.service.Metrics(ctx)
	if err != nil {
		return fmt.Errorf("failed to collect metrics: %w", err)
	}

	for _, s := range snapshot.Summary {
		c.println(fmt.Sprintf("There are %d %s applications.", s.Count, s.Status))
	}
	c.println(fmt.Sprintf("The total value of approved loans is %d.", snapshot.ApprovedLoanTotalValue))
	if snapshot.MeanLoanToValueRate != nil {
		c.println(fmt.Sprintf("The mean LTV rate of all processed loans is %d%%.", *snapshot.MeanLoanToValueRate))
	}
	return nil
}

func (c *Console) ask(prompt string) (string, bool) {
	c.println(prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			zap.L().Error("failed to read console input", zap.Error(err))
		}
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) println(line string) {
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		zap.L().Error("failed to write console output", zap.Error(err))
	}
}

func keyOf(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	return strings.ToLower(input[:1])
}

// ParseAmount parses a GBP amount as a 32-bit integer. Unparseable input is 0.
func ParseAmount(input string) int32 {
	v, err := strconv.ParseInt(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}

// ParseCreditScore parses a credit score as a 16-bit integer. Unparseable input is 0.
func ParseCreditScore(input string) int16 {
	v, err := strconv.ParseInt(strings.TrimSpace(input), 10, 16)
	if err != nil {
		return 0
	}
	return int16(v)
}
