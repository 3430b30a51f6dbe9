package commands

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrChangePaymentStatusCommandIsNotConstructed = errors.New(
	"ChangePaymentStatusCommand must be created via NewChangePaymentStatusCommand constructor",
)

// ChangePaymentStatusCommand asks to move an order's payment status to a code of
// the payment vocabulary. Membership is checked by the handler against the registry.
type ChangePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

func NewChangePaymentStatusCommand(orderID kernel.UUID, code string) (ChangePaymentStatusCommand, error) {
	code = strings.TrimSpace(code)
	if err := errors.Join(orderID.Validate(), requireCode("payment status", code)); err != nil {
		return ChangePaymentStatusCommand{}, err
	}

	return ChangePaymentStatusCommand{
		orderID: orderID,
		code:    code,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentStatusCommandIsNotConstructed)
}

func (c ChangePaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangePaymentStatusCommand) Code() string {
	return c.code
}

func requireCode(param, code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
