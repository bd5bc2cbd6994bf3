package dto_test

import (
	"testing"

	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/nikolayk812/storefront-client/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePaymentMethod(t *testing.T) {
	card := domain.CardSnapshot{
		ID:              "card-1",
		BankName:        "Monzo",
		MaskedNumber:    "**** 4242",
		HolderName:      "Ada Lovelace",
		ExpirationMonth: 4,
		ExpirationYear:  2031,
	}

	tests := []struct {
		name    string
		input   domain.PaymentMethod
		want    string
		wantErr bool
	}{
		{
			name:  "none: ok",
			input: domain.PaymentMethod{},
			want:  "",
		},
		{
			name:  "simple: ok",
			input: domain.SimplePaymentMethod("PayPal"),
			want:  "PayPal",
		},
		{
			name:  "card: ok",
			input: domain.CardPaymentMethod(card),
			want:  `{"_id":"card-1","bankName":"Monzo","number":"**** 4242","fullName":"Ada Lovelace","monthExpiration":4,"yearExpiration":2031}`,
		},
		{
			name:    "unknown kind: error",
			input:   domain.PaymentMethod{Kind: domain.PaymentKind(42)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dto.EncodePaymentMethod(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			assert.Equal(t, tt.input, dto.DecodePaymentMethod(got))
		})
	}
}

func TestDecodePaymentMethod(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.PaymentMethod
	}{
		{
			name:  "empty is none",
			input: "",
			want:  domain.PaymentMethod{},
		},
		{
			name:  "plain label",
			input: "Cash on delivery",
			want:  domain.SimplePaymentMethod("Cash on delivery"),
		},
		{
			name:  "broken json stays a label",
			input: "{not json",
			want:  domain.SimplePaymentMethod("{not json"),
		},
		{
			name:  "card without id",
			input: `{"bankName":"Revolut","number":"**** 1111","fullName":"Alan Turing","monthExpiration":12,"yearExpiration":2030}`,
			want: domain.CardPaymentMethod(domain.CardSnapshot{
				BankName:        "Revolut",
				MaskedNumber:    "**** 1111",
				HolderName:      "Alan Turing",
				ExpirationMonth: 12,
				ExpirationYear:  2030,
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.DecodePaymentMethod(tt.input))
		})
	}
}
