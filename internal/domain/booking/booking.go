package booking

type CreateBookingRequest struct {
	FranchiseID   string       `json:"franchise_id"`
	StartDatetime string       `json:"start_datetime"`
	EndDatetime   string       `json:"end_datetime"`
	CustomerInfo  CustomerInfo `json:"customer_info"`
	ChildInfo     ChildInfo    `json:"child_info"`
}

type CreateBookingResponse struct {
	BookingID       string  `json:"booking_id"`
	ReferenceNumber string  `json:"reference_number"`
	TotalAmount     float64 `json:"total_amount"`
	Currency        string  `json:"currency"`
	PaymentRequired bool    `json:"payment_required"`
	PaymentURL      *string `json:"payment_url,omitempty"`
}

type FranchiseInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// BookingDetails is the backend's canonical record. It is only ever fetched.
type BookingDetails struct {
	BookingID       string        `json:"booking_id"`
	ReferenceNumber string        `json:"reference_number"`
	FranchiseInfo   FranchiseInfo `json:"franchise_info"`
	BookingStatus   Status        `json:"booking_status"`
	StartDatetime   string        `json:"start_datetime"`
	EndDatetime     string        `json:"end_datetime"`
	DurationHours   float64       `json:"duration_hours"`
	TotalAmount     float64       `json:"total_amount"`
	Currency        string        `json:"currency"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	CustomerInfo    CustomerInfo  `json:"customer_info"`
	ChildInfo       ChildInfo     `json:"child_info"`
	QRCodeURL       *string       `json:"qr_code_url,omitempty"`
	CreatedAt       string        `json:"created_at"`
}

type ModifyBookingRequest struct {
	StartDatetime *string         `json:"start_datetime,omitempty"`
	EndDatetime   *string         `json:"end_datetime,omitempty"`
	ChildInfo     *ChildInfoPatch `json:"child_info,omitempty"`
}

func (r ModifyBookingRequest) IsEmpty() bool {
	return r.StartDatetime == nil && r.EndDatetime == nil && (r.ChildInfo == nil || r.ChildInfo.IsEmpty())
}

type ModifyBookingResponse struct {
	BookingID                 string   `json:"booking_id"`
	ChangesApplied            []string `json:"changes_applied"`
	PriceDifference           float64  `json:"price_difference"`
	NewTotalAmount            float64  `json:"new_total_amount"`
	AdditionalPaymentRequired bool     `json:"additional_payment_required"`
	PaymentURL                *string  `json:"payment_url,omitempty"`
}

type CancelBookingResponse struct {
	BookingID             string  `json:"booking_id"`
	CancellationConfirmed bool    `json:"cancellation_confirmed"`
	RefundAmount          float64 `json:"refund_amount"`
	RefundPolicyApplied   string  `json:"refund_policy_applied"`
	EstimatedRefundDate   string  `json:"estimated_refund_date"`
}

type PaymentRequest struct {
	BookingID       string `json:"booking_id"`
	PaymentMethodID string `json:"payment_method_id"`
}

type PaymentResponse struct {
	PaymentID        string        `json:"payment_id"`
	Status           PaymentResult `json:"status"`
	ClientSecret     *string       `json:"client_secret,omitempty"`
	BookingConfirmed bool          `json:"booking_confirmed"`
}

type QRCodeResponse struct {
	BookingID  string `json:"booking_id"`
	QRCodeURL  string `json:"qr_code_url"`
	QRCodeData string `json:"qr_code_data"`
}
