package domain

type PaymentKind int

const (
	PaymentKindNone PaymentKind = iota
	PaymentKindSimple
	PaymentKindCard
)

func (k PaymentKind) String() string {
	switch k {
	case PaymentKindSimple:
		return "simple"
	case PaymentKindCard:
		return "card"
	default:
		return "none"
	}
}

// PaymentMethod is either a bare method label or a snapshot of a stored card.
// The zero value means no method has been chosen.
type PaymentMethod struct {
	Kind  PaymentKind
	Label string
	Card  CardSnapshot
}

// CardSnapshot holds the display fields of a stored payment card.
type CardSnapshot struct {
	ID              string
	BankName        string
	MaskedNumber    string
	HolderName      string
	ExpirationMonth int
	ExpirationYear  int
}

func SimplePaymentMethod(label string) PaymentMethod {
	return PaymentMethod{Kind: PaymentKindSimple, Label: label}
}

func CardPaymentMethod(card CardSnapshot) PaymentMethod {
	return PaymentMethod{Kind: PaymentKindCard, Card: card}
}

func (p PaymentMethod) IsZero() bool {
	return p.Kind == PaymentKindNone
}
