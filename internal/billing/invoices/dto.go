package invoices

type CreateInvoiceRequest struct {
	CustomerName    *string             `json:"customerName,omitempty" validate:"omitempty,max=200"`
	CustomerPhone   *string             `json:"customerPhone,omitempty" validate:"omitempty,max=50"`
	CustomerEmail   *string             `json:"customerEmail,omitempty" validate:"omitempty,email"`
	CustomerAddress *string             `json:"customerAddress,omitempty" validate:"omitempty,max=500"`
	Items           []CreateInvoiceItem `json:"items" validate:"dive"`
	TaxAmount       float64             `json:"taxAmount" validate:"gte=0"`
	DiscountAmount  float64             `json:"discountAmount" validate:"gte=0"`
	Notes           *string             `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type CreateInvoiceItem struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}
