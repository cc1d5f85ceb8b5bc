package response

import (
	"testing"

	"trip-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestPaymentDetailToResponse(t *testing.T) {
	detail := &entity.PaymentDetail{
		BookingUUID:   "0f6a2d5c-8e3b-4c9f-a1d7-2b5e9c4f0a63",
		BookingStatus: entity.BookingStatusPending,
		OriginalPrice: 150,
		DiscountPrice: 25,
		NumOfPeople:   3,
		TotalPrice:    375,
		Provider: entity.Provider{
			CompanyName:       "Bromo Adventures",
			BankName:          "BCA",
			BankAccountNumber: "1234567890",
			BankAccountName:   "PT Bromo Adventures",
		},
	}

	resp := PaymentDetailToResponse(detail)
	assert.Equal(t, 125.0, resp.PricePerPerson)
	assert.Equal(t, "BCA", resp.BankTransfer.BankName)
}

func TestPaymentDetailPerPersonNeverNegative(t *testing.T) {
	detail := &entity.PaymentDetail{
		OriginalPrice: 40,
		DiscountPrice: 60,
		NumOfPeople:   2,
	}

	resp := PaymentDetailToResponse(detail)
	assert.Equal(t, 0.0, resp.PricePerPerson)
}
