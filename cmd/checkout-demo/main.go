package main

import (
	"log/slog"
	"os"

	"cko/client/checkout"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Runs a card payment against the sandbox gateway. Needs CKO_ENVIRONMENT and
// either CKO_SECRET_KEY or CKO_USERNAME/CKO_PASSWORD.
func main() {
	slog.SetLogLoggerLevel(slog.LevelInfo)

	client, err := checkout.FromEnv()
	if err != nil {
		slog.Error("[Demo] Failed to build client", "error", err)
		os.Exit(1)
	}

	amount, err := checkout.NewAmount(checkout.CURRENCY_USD, decimal.RequireFromString("20.00"))
	if err != nil {
		slog.Error("[Demo] Failed to encode amount", "error", err)
		os.Exit(1)
	}

	response, err := client.CreatePayment(&checkout.CreatePaymentRequest{
		Source:         checkout.NewCardSource("4242424242424242", 6, 2028),
		Amount:         amount,
		Currency:       checkout.CURRENCY_USD,
		PaymentType:    checkout.PAYMENT_TYPE_REGULAR,
		Reference:      uuid.NewString(),
		IdempotencyKey: checkout.NewIdempotencyKey(),
	})
	if err != nil {
		slog.Error("[Demo] Payment failed", "error", err)
		os.Exit(1)
	}

	switch {
	case response.Pending != nil:
		pending := response.Pending
		color.Yellow("payment %s pending", pending.Id)
		if redirect, ok := pending.Links[checkout.LINK_REDIRECT]; ok {
			color.Yellow("complete it at %s", redirect.Href)
		}
	case response.Processed != nil:
		processed := response.Processed
		face := processed.Amount.Decimal(processed.Currency)
		if processed.Approved {
			color.Green("payment %s approved: %s %s (%s)", processed.Id, face, processed.Currency, processed.Status)
		} else {
			color.Red("payment %s declined: %s", processed.Id, processed.ResponseSummary)
			os.Exit(1)
		}

		actions, err := client.GetPaymentActions(&checkout.GetPaymentActionsRequest{PaymentId: processed.Id})
		if err != nil {
			slog.Error("[Demo] Failed to list actions", "error", err)
			os.Exit(1)
		}
		for _, action := range actions {
			slog.Info("[Demo] action", "id", action.Id, "type", action.Type, "amount", action.Amount)
		}
	}
}
