package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/payOSHQ/payos-lib-golang"

	"librio/internal/models/db_models"
	"librio/internal/models/response_models"
	"librio/internal/repositories"
	"librio/pkg/utils"
)

type PayOSConfig struct {
	ClientID     string
	ApiKey       string
	ChecksumKey  string // secret used to sign webhooks
	ReturnURL    string
	CancelURL    string
	ProviderName string // "payos" (stored on PointTransaction.Provider)
}

type PaymentServiceInterface interface {
	CreateTopUpCheckout(ctx context.Context, accountID uuid.UUID, points int64) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(c *gin.Context)
}

type paymentService struct {
	txnRepo      repositories.PointTransactionRepository
	pointService PointServiceInterface
	cfg          PayOSConfig
}

func NewPaymentService(
	txnRepo repositories.PointTransactionRepository,
	pointService PointServiceInterface,
	cfg PayOSConfig,
) (PaymentServiceInterface, error) {
	if cfg.ClientID == "" || cfg.ApiKey == "" || cfg.ChecksumKey == "" {
		return nil, errors.New("missing payOS credentials")
	}
	if err := payos.Key(cfg.ClientID, cfg.ApiKey, cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}
	return &paymentService{
		txnRepo:      txnRepo,
		pointService: pointService,
		cfg:          cfg,
	}, nil
}

func (p *paymentService) CreateTopUpCheckout(ctx context.Context, accountID uuid.UUID, points int64) (*response_models.CreateCheckoutResponse, error) {
	if points <= 0 {
		return nil, utils.ErrInvalidAmount
	}

	// payOS expects an int64 order code; unix seconds plus a short random
	// suffix keeps it within 13 digits with low collision probability.
	orderCode := time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)
	providerTxnID := fmt.Sprintf("payos:%d", orderCode)

	// Pending ledger row first: the webhook resolves the order back to
	// this row by ProviderTxnID.
	txn := &db_models.PointTransaction{
		AccountID:     accountID,
		Amount:        points,
		Kind:          db_models.TxnKindTopUp,
		Status:        db_models.TxnStatusPending,
		Provider:      p.cfg.ProviderName,
		ProviderTxnID: providerTxnID,
	}
	if err := p.txnRepo.Insert(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	// 1 point = 1 VND at checkout.
	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    int(points),
		Items: []payos.Item{{
			Name:     fmt.Sprintf("%d reading points", points),
			Price:    int(points),
			Quantity: 1,
		}},
		Description: fmt.Sprintf("Point top-up %d", points),
		CancelUrl:   p.cfg.CancelURL,
		ReturnUrl:   p.cfg.ReturnURL,
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		txn.Status = db_models.TxnStatusFailed
		if saveErr := p.txnRepo.Save(ctx, txn); saveErr != nil {
			log.Printf("payments: failed to mark txn %s failed: %v", providerTxnID, saveErr)
		}
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	if meta, err := json.Marshal(map[string]any{"payos_link": resp}); err == nil {
		txn.Metadata = meta
		if err := p.txnRepo.Save(ctx, txn); err != nil {
			log.Printf("payments: failed to snapshot link for %s: %v", providerTxnID, err)
		}
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:    orderCode,
		Amount:       points,
		PaymentURL:   resp.CheckoutUrl,
		ProviderName: p.cfg.ProviderName,
	}, nil
}

func (p *paymentService) HandleWebhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("payments: error reading webhook body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	var body payos.WebhookType
	if err := json.Unmarshal(rawBody, &body); err != nil {
		log.Printf("payments: error parsing webhook data: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	data, payosErr := payos.VerifyPaymentWebhookData(body)
	if payosErr != nil {
		log.Printf("payments: error verifying webhook data: %v", payosErr)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to verify webhook data"})
		return
	}

	// payOS sends order 123 as its endpoint-confirmation probe.
	if data.OrderCode == 123 {
		c.JSON(http.StatusOK, gin.H{"message": "Confirm webhook complete"})
		return
	}

	providerTxnID := fmt.Sprintf("payos:%d", data.OrderCode)
	if err := p.pointService.ConfirmTopUp(c.Request.Context(), providerTxnID); err != nil {
		log.Printf("payments: failed to settle order %d: %v", data.OrderCode, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
