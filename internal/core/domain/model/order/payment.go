package order

import (
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodWallet PaymentMethod = "WALLET"
)

// ParsePaymentMethod accepts CARD, CASH or WALLET. An empty string yields CARD.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case "":
		return PaymentMethodCard, nil
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodWallet:
		return m, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not supported", s))
	}
}

// PaymentStatus is owned by the payment processor integration. Orders only create
// payments in PaymentStatusInitiated.
type PaymentStatus string

const (
	PaymentStatusInitiated  PaymentStatus = "INITIATED"
	PaymentStatusAuthorized PaymentStatus = "AUTHORIZED"
	PaymentStatusCaptured   PaymentStatus = "CAPTURED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
)

// Payment is a stub record of the payment expected for an order.
type Payment struct {
	id           kernel.UUID
	method       PaymentMethod
	amount       kernel.Money
	currency     string
	status       PaymentStatus
	processorRef string
	createdAt    time.Time
}

// RestorePayment rebuilds a payment loaded from persistence.
func RestorePayment(
	id kernel.UUID,
	method PaymentMethod,
	amount kernel.Money,
	currency string,
	status PaymentStatus,
	processorRef string,
	createdAt time.Time,
) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		id:           id,
		method:       method,
		amount:       amount,
		currency:     currency,
		status:       status,
		processorRef: processorRef,
		createdAt:    createdAt,
	}, nil
}

func (p *Payment) ID() kernel.UUID       { return p.id }
func (p *Payment) Method() PaymentMethod { return p.method }
func (p *Payment) Amount() kernel.Money  { return p.amount }
func (p *Payment) Currency() string      { return p.currency }
func (p *Payment) Status() PaymentStatus { return p.status }
func (p *Payment) ProcessorRef() string  { return p.processorRef }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }
