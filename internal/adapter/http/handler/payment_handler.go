package handler

import (
	"io"

	"donation-gateway/internal/adapter/http/dto"
	"donation-gateway/internal/adapter/http/middleware"
	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
	"donation-gateway/pkg/apperror"
	"donation-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the donation endpoints.
type PaymentHandler struct {
	methodSvc  ports.MethodService
	intentSvc  ports.IntentService
	webhookSvc ports.WebhookService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(methodSvc ports.MethodService, intentSvc ports.IntentService, webhookSvc ports.WebhookService) *PaymentHandler {
	return &PaymentHandler{methodSvc: methodSvc, intentSvc: intentSvc, webhookSvc: webhookSvc}
}

// Methods handles GET /api/v1/payments/methods.
func (h *PaymentHandler) Methods(c *gin.Context) {
	configs := h.methodSvc.MethodConfigs()

	resp := dto.MethodsResponse{
		OK:      true,
		Mode:    h.methodSvc.Mode(),
		Methods: make([]dto.MethodConfigResponse, 0, len(configs)),
	}

	bankEnabled := false
	for _, cfg := range configs {
		resp.Methods = append(resp.Methods, dto.MethodConfigResponse{
			Method:      string(cfg.Method),
			Label:       cfg.Label,
			Enabled:     cfg.Enabled,
			HostedURL:   cfg.HostedURL,
			Description: cfg.Description,
		})
		if cfg.Method == domain.MethodBank && cfg.Enabled {
			bankEnabled = true
		}
	}

	if bankEnabled {
		bi := h.methodSvc.BankInstructions()
		resp.Bank = &dto.BankInstructionsResponse{
			BankName:      bi.BankName,
			AccountName:   bi.AccountName,
			AccountNumber: bi.AccountNumber,
			SwiftCode:     bi.SwiftCode,
			ReferenceNote: bi.ReferenceNote,
		}
	}

	response.OK(c, resp)
}

// CreateIntent handles POST /api/v1/payments/create-intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req dto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	method, ok := domain.ParseMethod(req.Provider)
	if !ok {
		response.Error(c, apperror.ErrUnsupportedProvider(req.Provider))
		return
	}

	result, err := h.intentSvc.CreateIntent(c.Request.Context(), ports.CreateIntentRequest{
		Provider:   method,
		Amount:     req.Amount,
		Currency:   req.Currency,
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		UserID:     middleware.UserID(c),
		Metadata:   req.Metadata,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.IntentResponse{
		OK:            true,
		Mode:          result.Mode,
		Provider:      string(result.Provider),
		ProviderRef:   result.ProviderRef,
		Status:        string(result.Status),
		CheckoutURL:   result.CheckoutURL,
		TrackingSaved: result.TrackingSaved,
		Message:       result.Message,
	})
}

// Webhook handles POST /api/v1/payments/webhooks/:provider. The body is
// passed to the service as raw bytes; signature verification needs the
// exact payload the provider signed.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	method, ok := domain.ParseMethod(c.Param("provider"))
	if !ok {
		response.Error(c, apperror.ErrUnsupportedProvider(c.Param("provider")))
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	result, err := h.webhookSvc.Process(c.Request.Context(), method, raw, c.Request.Header)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WebhookAckResponse{
		OK:        true,
		Duplicate: result.Duplicate,
		Processed: result.Processed,
	})
}

// SubmitProof handles POST /api/v1/payments/bank/submit-proof.
func (h *PaymentHandler) SubmitProof(c *gin.Context) {
	var req dto.SubmitProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	txn, err := h.webhookSvc.SubmitBankProof(c.Request.Context(), ports.BankProofRequest{
		ProviderRef:       req.ProviderRef,
		TransferReference: req.TransferReference,
		ProofURL:          req.ProofURL,
		Notes:             req.Notes,
		UserID:            middleware.UserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ProofResponse{
		OK:          true,
		Transaction: toTransactionResponse(txn),
		Message:     "Proof received. Your transfer will be reviewed shortly.",
	})
}

// toTransactionResponse converts a domain transaction to its DTO.
func toTransactionResponse(t *domain.DonationTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            t.ID.String(),
		Provider:      string(t.Provider),
		ProviderRef:   t.ProviderRef,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Status:        string(t.Status),
		WebhookEvents: t.WebhookEvents,
		CreatedAt:     t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     t.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
