package domain

import (
	"errors"
)

var (
	MessageSuccessCreateTransaction = "subscription transaction created successfully"
	MessageSuccessWebhook           = "webhook processed successfully"

	MessageFailedCreateTransaction = "failed to create subscription transaction"
	MessageFailedWebhook           = "failed to process webhook"

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidPlan         = errors.New("invalid subscription plan")
)

type (
	CreateTransactionRequest struct {
		PlanName string `json:"plan_name" validate:"required,oneof=monthly yearly"`
	}

	CreateTransactionResponse struct {
		OrderID     string  `json:"order_id"`
		Amount      float64 `json:"amount"`
		RedirectURL string  `json:"redirect_url"`
		Token       string  `json:"token"`
	}

	MidtransWebhookRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
