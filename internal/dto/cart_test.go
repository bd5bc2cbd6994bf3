package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/nikolayk812/storefront-client/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartLinesToDomain(t *testing.T) {
	input := `[
		{"_id":"p1","name":"Oak chair","price":120.5,"quantity":2,"stock":0,"category":{"_id":"c1","name":"Chairs"}},
		{"_id":"p2","name":"Lamp","price":35,"quantity":1,"category":"c2"},
		{"_id":"p3","name":"Rug","price":80,"quantity":1,"category":null}
	]`

	var records []dto.CartLine
	require.NoError(t, json.Unmarshal([]byte(input), &records))

	lines, err := dto.CartLinesToDomain(records)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, domain.KnownStock(0), lines[0].Stock)
	assert.Equal(t, "c1", lines[0].CategoryRef)
	assert.True(t, decimal.RequireFromString("120.5").Equal(lines[0].UnitPrice))

	assert.Equal(t, domain.UnknownStock(), lines[1].Stock)
	assert.Equal(t, "c2", lines[1].CategoryRef)

	assert.Empty(t, lines[2].CategoryRef)
}

func TestCartLinesToDomain_Error(t *testing.T) {
	records := []dto.CartLine{
		{ID: "p1", Quantity: 1},
		{Name: "no id", Quantity: 1},
	}

	_, err := dto.CartLinesToDomain(records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line[1]")
}

func TestCartLineFromDomain_UnknownStockOmitted(t *testing.T) {
	data, err := json.Marshal(dto.CartLineFromDomain(domain.CartLine{
		ID:        "p1",
		Name:      "Lamp",
		UnitPrice: decimal.NewFromInt(35),
		Quantity:  1,
	}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"_id":"p1","name":"Lamp","price":35,"quantity":1}`, string(data))
}

func TestRef_Error(t *testing.T) {
	var r dto.Ref
	require.Error(t, json.Unmarshal([]byte(`42`), &r))
}

func TestAddressFromDomain_EmptyIsEmptyObject(t *testing.T) {
	data, err := json.Marshal(dto.AddressFromDomain(domain.ShippingAddress{}))
	require.NoError(t, err)

	assert.JSONEq(t, `{}`, string(data))
}
