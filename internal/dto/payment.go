package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nikolayk812/storefront-client/internal/domain"
)

type CardSnapshot struct {
	ID              string `json:"_id,omitempty"`
	BankName        string `json:"bankName"`
	Number          string `json:"number"`
	FullName        string `json:"fullName"`
	MonthExpiration int    `json:"monthExpiration"`
	YearExpiration  int    `json:"yearExpiration"`
}

// EncodePaymentMethod renders the stored string form: the bare label for a
// simple method, a JSON object for a card, and "" when nothing is chosen.
func EncodePaymentMethod(pm domain.PaymentMethod) (string, error) {
	switch pm.Kind {
	case domain.PaymentKindNone:
		return "", nil
	case domain.PaymentKindSimple:
		return pm.Label, nil
	case domain.PaymentKindCard:
		data, err := json.Marshal(CardSnapshot{
			ID:              pm.Card.ID,
			BankName:        pm.Card.BankName,
			Number:          pm.Card.MaskedNumber,
			FullName:        pm.Card.HolderName,
			MonthExpiration: pm.Card.ExpirationMonth,
			YearExpiration:  pm.Card.ExpirationYear,
		})
		if err != nil {
			return "", fmt.Errorf("json.Marshal: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: payment kind %d", domain.ErrInvalidArgument, pm.Kind)
	}
}

// DecodePaymentMethod is the inverse of EncodePaymentMethod. A value that
// looks like a JSON object but does not parse is kept as a label.
func DecodePaymentMethod(s string) domain.PaymentMethod {
	if s == "" {
		return domain.PaymentMethod{}
	}

	if strings.HasPrefix(strings.TrimSpace(s), "{") {
		var card CardSnapshot
		if err := json.Unmarshal([]byte(s), &card); err == nil {
			return domain.CardPaymentMethod(domain.CardSnapshot{
				ID:              card.ID,
				BankName:        card.BankName,
				MaskedNumber:    card.Number,
				HolderName:      card.FullName,
				ExpirationMonth: card.MonthExpiration,
				ExpirationYear:  card.YearExpiration,
			})
		}
	}

	return domain.SimplePaymentMethod(s)
}
