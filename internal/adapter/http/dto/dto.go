package dto

// CreateIntentRequest is the request body for donation intent creation.
// Amount and currency are optional; the service fills the defaults.
type CreateIntentRequest struct {
	Provider   string         `json:"provider" binding:"required,safe_id"`
	Amount     int64          `json:"amount" binding:"omitempty,gt=0"`
	Currency   string         `json:"currency" binding:"omitempty,min=3,max=6"`
	DonorName  *string        `json:"donor_name,omitempty" binding:"omitempty,max=100"`
	DonorEmail *string        `json:"donor_email,omitempty" binding:"omitempty,email"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// SubmitProofRequest is the request body for manual bank transfer proof.
type SubmitProofRequest struct {
	ProviderRef       string  `json:"provider_ref" binding:"required,safe_id,max=100"`
	TransferReference string  `json:"transfer_reference" binding:"required,max=100"`
	ProofURL          *string `json:"proof_url,omitempty" binding:"omitempty,safe_url,max=2048"`
	Notes             *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// MethodConfigResponse describes one donation method's availability.
type MethodConfigResponse struct {
	Method      string  `json:"method"`
	Label       string  `json:"label"`
	Enabled     bool    `json:"enabled"`
	HostedURL   *string `json:"hosted_url,omitempty"`
	Description string  `json:"description"`
}

// BankInstructionsResponse carries the manual transfer display details.
type BankInstructionsResponse struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	SwiftCode     string `json:"swift_code,omitempty"`
	ReferenceNote string `json:"reference_note,omitempty"`
}

// MethodsResponse is the response body for the methods listing.
type MethodsResponse struct {
	OK      bool                      `json:"ok"`
	Mode    string                    `json:"mode"`
	Methods []MethodConfigResponse    `json:"methods"`
	Bank    *BankInstructionsResponse `json:"bank,omitempty"`
}

// IntentResponse is the response body for a created donation intent.
type IntentResponse struct {
	OK            bool    `json:"ok"`
	Mode          string  `json:"mode"`
	Provider      string  `json:"provider"`
	ProviderRef   string  `json:"provider_ref"`
	Status        string  `json:"status"`
	CheckoutURL   *string `json:"checkout_url,omitempty"`
	TrackingSaved bool    `json:"tracking_saved"`
	Message       string  `json:"message,omitempty"`
}

// WebhookAckResponse acknowledges an inbound provider event. Exactly one
// of Duplicate and Processed is true on a 200.
type WebhookAckResponse struct {
	OK        bool `json:"ok"`
	Duplicate bool `json:"duplicate"`
	Processed bool `json:"processed"`
}

// TransactionResponse is the client view of a donation transaction.
type TransactionResponse struct {
	ID            string   `json:"id"`
	Provider      string   `json:"provider"`
	ProviderRef   string   `json:"provider_ref"`
	Amount        int64    `json:"amount"`
	Currency      string   `json:"currency"`
	Status        string   `json:"status"`
	WebhookEvents []string `json:"webhook_events,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// ProofResponse is the response body for a proof submission.
type ProofResponse struct {
	OK          bool                `json:"ok"`
	Transaction TransactionResponse `json:"transaction"`
	Message     string              `json:"message,omitempty"`
}
