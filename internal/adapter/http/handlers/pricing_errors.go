package handlers

import (
	"errors"
	"net/http"

	"translation_backoffice/internal/usecase"
	"translation_backoffice/pkg"
)

// mapPricingError maps the errors shared by every write that recomputes quote totals.
// Validation errors keep their message as details so the admin panel can show it.
func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainError("INVALID_LINE_ITEM", "Invalid line item", unwrapDetails(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCertification):
		return pkg.NewDomainError("INVALID_CERTIFICATION", "Invalid certification", unwrapDetails(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAdjustment):
		return pkg.NewDomainError("INVALID_ADJUSTMENT", "Invalid adjustment", unwrapDetails(err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAdjustmentsDisabled):
		return pkg.NewDomainErrorSimple("ADJUSTMENTS_DISABLED", "Adjustments are not available for this quote", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCertificationNotFound):
		return pkg.NewDomainErrorSimple("CERTIFICATION_NOT_FOUND", "Certification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAdjustmentNotFound):
		return pkg.NewDomainErrorSimple("ADJUSTMENT_NOT_FOUND", "Adjustment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteLocked):
		return pkg.NewDomainErrorSimple("QUOTE_LOCKED", "Quote can no longer be priced", http.StatusConflict)
	case errors.Is(err, usecase.ErrTotalsConflict):
		return pkg.NewDomainErrorSimple("TOTALS_CONFLICT", "Quote totals changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// unwrapDetails strips the sentinel prefix ("invalid line item: ") from a validation error.
func unwrapDetails(err error) error {
	msg := err.Error()
	for _, sentinel := range []error{usecase.ErrInvalidLineItem, usecase.ErrInvalidCertification, usecase.ErrInvalidAdjustment} {
		prefix := sentinel.Error() + ": "
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return errors.New(msg[len(prefix):])
		}
	}
	return nil
}
