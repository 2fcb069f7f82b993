package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"

	"tool-rental-pos/internal/domain"
	"tool-rental-pos/internal/logger"
	"tool-rental-pos/internal/printer"
	"tool-rental-pos/internal/service"
	"tool-rental-pos/internal/validation"
)

const (
	invalidToolResponse     = "Please type one of the number options listed."
	invalidDaysResponse     = "Please be sure you entered a whole number between 1 and 28"
	invalidDiscountResponse = "Please be sure you entered a whole number between 0 and 100."
	invalidYesNoResponse    = "Please be sure enter 0 for Yes or 1 for No."
)

// Clerk runs the interactive checkout loop at the counter. Every answer is
// validated and the question is asked again until the answer is acceptable.
type Clerk struct {
	in       *bufio.Scanner
	out      io.Writer
	catalog  service.CatalogService
	checkout service.CheckoutService
	validate *validatorv10.Validate
	today    func() time.Time
}

func NewClerk(in io.Reader, out io.Writer, catalog service.CatalogService, checkout service.CheckoutService, validate *validatorv10.Validate, today func() time.Time) *Clerk {
	return &Clerk{
		in:       bufio.NewScanner(in),
		out:      out,
		catalog:  catalog,
		checkout: checkout,
		validate: validate,
		today:    today,
	}
}

// Run checks out rentals until the clerk declines to continue or input ends
func (c *Clerk) Run(ctx context.Context) error {
	for {
		if err := c.checkoutOne(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				logger.Info("Clerk input closed")
				return nil
			}
			return err
		}

		more, err := c.askYesNo("Would you like to checkout another customer?")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (c *Clerk) checkoutOne(ctx context.Context) error {
	tools, err := c.catalog.ListTools(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}
	if len(tools) == 0 {
		return errors.New("no tools available for rental")
	}

	tool, err := c.AskForTool(tools)
	if err != nil {
		return err
	}
	rentalDays, err := c.AskForRentalDays(tool.Type)
	if err != nil {
		return err
	}
	discount, err := c.AskForDiscount()
	if err != nil {
		return err
	}

	agreement, err := c.checkout.Checkout(ctx, &tool, c.today(), rentalDays, discount)
	if err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}

	wantsPrintout, err := c.askYesNo("Would the customer like a printout of their rental agreement?")
	if err != nil {
		return err
	}
	if wantsPrintout {
		c.println(printer.RenderAgreement(agreement))
	}
	return nil
}

// AskForTool lists the tools by index and returns the selected one
func (c *Clerk) AskForTool(tools []domain.Tool) (domain.Tool, error) {
	c.println("Which tool will the customer be renting?")
	for i, t := range tools {
		c.println(fmt.Sprintf("%d: %s - %s (%s)", i, t.Code, t.Type, t.Brand))
	}
	c.println("Select an Item Index from the list of available tools.")

	for {
		line, err := c.readLine()
		if err != nil {
			return domain.Tool{}, err
		}
		idx, err := strconv.Atoi(line)
		if err == nil && idx >= 0 && idx < len(tools) {
			return tools[idx], nil
		}
		c.println(invalidToolResponse)
	}
}

// AskForRentalDays asks how long the tool is rented for
func (c *Clerk) AskForRentalDays(toolType string) (int, error) {
	c.println(fmt.Sprintf("How many days would the customer like to rent the %s? (No more than %d)", toolType, domain.MaxRentalDays))

	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		days, err := validation.ParseRentalDays(c.validate, line)
		if err == nil {
			return days, nil
		}
		logger.Debug("Rental days rejected", "input", line, "error", err)
		c.println(invalidDaysResponse)
	}
}

// AskForDiscount asks for the percentage to take off the rental
func (c *Clerk) AskForDiscount() (int, error) {
	c.println("Please enter percentage to discount from this rental. (format: XX)")

	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		pct, err := validation.ParseDiscountPercent(c.validate, line)
		if err == nil {
			return pct, nil
		}
		logger.Debug("Discount rejected", "input", line, "error", err)
		c.println(invalidDiscountResponse)
	}
}

func (c *Clerk) askYesNo(question string) (bool, error) {
	c.println(question + "\n0: Yes\n1: No\n")

	for {
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch line {
		case "0":
			return true, nil
		case "1":
			return false, nil
		}
		c.println(invalidYesNoResponse)
	}
}

// readLine returns the next non-empty trimmed line, or io.EOF
func (c *Clerk) readLine() (string, error) {
	for c.in.Scan() {
		line := strings.TrimSpace(c.in.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := c.in.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (c *Clerk) println(s string) {
	fmt.Fprintln(c.out, s)
}
