package midtrans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"plateplan-backend/domain"
	"plateplan-backend/entities"
	"plateplan-backend/internal/utils"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// Subscription prices in IDR, the gateway's settlement currency.
var planPrices = map[string]int64{
	"monthly": 49000,
	"yearly":  490000,
}

type (
	MidtransService interface {
		CreateTransaction(ctx context.Context, req domain.CreateTransactionRequest, userID string) (domain.CreateTransactionResponse, error)
		HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		snapClient         snap.Client
		coreClient         coreapi.Client
	}
)

func NewMidtransService(midtransRepository MidtransRepository) MidtransService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var snapClient snap.Client
	snapClient.New(utils.GetConfig("SERVER_KEY"), env)

	var coreClient coreapi.Client
	coreClient.New(utils.GetConfig("SERVER_KEY"), env)

	return &midtransService{
		midtransRepository: midtransRepository,
		snapClient:         snapClient,
		coreClient:         coreClient,
	}
}

func (s *midtransService) CreateTransaction(ctx context.Context, req domain.CreateTransactionRequest, userID string) (domain.CreateTransactionResponse, error) {
	amount, ok := planPrices[req.PlanName]
	if !ok {
		return domain.CreateTransactionResponse{}, domain.ErrInvalidPlan
	}

	user, err := s.midtransRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateTransactionResponse{}, domain.ErrUserNotFound
		}
		return domain.CreateTransactionResponse{}, err
	}

	orderID := fmt.Sprintf("PLATEPLAN-%s-%d", req.PlanName, time.Now().UnixNano())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.Name,
			Email: user.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.PlanName,
				Name:  fmt.Sprintf("PlatePlan premium (%s)", req.PlanName),
				Price: amount,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CreateTransactionResponse{}, snapErr
	}

	transaction := &entities.Transaction{
		ID:       uuid.New(),
		UserID:   user.ID,
		OrderID:  orderID,
		Amount:   float64(amount),
		Currency: "IDR",
		Status:   "Pending",
		PlanName: req.PlanName,
	}
	if err := s.midtransRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.CreateTransactionResponse{}, err
	}

	return domain.CreateTransactionResponse{
		OrderID:     orderID,
		Amount:      float64(amount),
		RedirectURL: snapResp.RedirectURL,
		Token:       snapResp.Token,
	}, nil
}

// HandleWebhook re-checks the transaction status with the gateway
// instead of trusting the notification payload.
func (s *midtransService) HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error {
	transaction, err := s.midtransRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	statusResp, statusErr := s.coreClient.CheckTransaction(req.OrderID)
	if statusErr != nil {
		return statusErr
	}

	switch statusResp.TransactionStatus {
	case "capture":
		if statusResp.FraudStatus == "accept" {
			return s.settle(ctx, transaction)
		}
	case "settlement":
		return s.settle(ctx, transaction)
	case "expire":
		transaction.Status = "Expired"
		return s.midtransRepository.UpdateTransaction(ctx, transaction)
	case "cancel", "deny":
		transaction.Status = "Cancelled"
		return s.midtransRepository.UpdateTransaction(ctx, transaction)
	}
	return nil
}

func (s *midtransService) settle(ctx context.Context, transaction *entities.Transaction) error {
	now := time.Now()
	transaction.Status = "Settlement"
	transaction.PaidAt = &now
	if err := s.midtransRepository.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	user, err := s.midtransRepository.GetUserByID(ctx, transaction.UserID.String())
	if err != nil {
		return err
	}
	user.IsPremium = true
	user.PremiumAt = &now
	return s.midtransRepository.UpdateUser(ctx, user)
}
