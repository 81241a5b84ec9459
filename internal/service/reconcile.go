package service

import (
	"math"

	"github.com/amirhxil/partner-transaction-api/internal/dto"
	"github.com/amirhxil/partner-transaction-api/pkg/errs"
)

// ReconcileItems checks every item, stopping at the first bad one, then
// requires the item sum to equal totalAmount exactly. Callers skip it when
// the request carried no items.
func ReconcileItems(items []dto.ItemDetail, totalAmount int64) error {
	for _, item := range items {
		if err := validateItem(item); err != nil {
			return err
		}
	}

	var itemsTotal int64
	for _, item := range items {
		if item.UnitPrice > math.MaxInt64/item.Qty {
			return errs.ErrTotalAmountMismatch
		}
		lineTotal := item.UnitPrice * item.Qty

		if itemsTotal > math.MaxInt64-lineTotal {
			return errs.ErrTotalAmountMismatch
		}
		itemsTotal += lineTotal
	}

	if itemsTotal != totalAmount {
		return errs.ErrTotalAmountMismatch
	}

	return nil
}
