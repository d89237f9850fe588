package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-builder/internal/application/dto"
)

func TestFieldValue_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		body string
		want dto.FieldValue
	}{
		{`{"field":"unit_price","value":"100"}`, "100"},
		{`{"field":"unit_price","value":100.50}`, "100.50"},
		{`{"field":"unit_price","value":1e2}`, "1e2"},
		{`{"field":"unit_price","value":"abc"}`, "abc"},
		{`{"field":"description","value":null}`, ""},
		{`{"field":"description"}`, ""},
		{`{"field":"reverse_charge","value":true}`, "Yes"},
		{`{"field":"reverse_charge","value":false}`, "No"},
	}
	for _, c := range cases {
		var req dto.SetFieldRequest
		require.NoError(t, json.Unmarshal([]byte(c.body), &req), c.body)
		assert.Equal(t, c.want, req.Value, c.body)
	}
}

func TestFieldValue_RechazaObjetosYListas(t *testing.T) {
	var req dto.SetFieldRequest
	assert.Error(t, json.Unmarshal([]byte(`{"field":"x","value":{"a":1}}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"field":"x","value":[1]}`), &req))
}

func TestInvoiceInput_Unmarshal(t *testing.T) {
	body := `{"header":{"seller_name":"Acme","reverse_charge":true},
	          "items":[{"description":"Widget","unit_price":100,"quantity":"2"}]}`
	var in dto.InvoiceInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	assert.Equal(t, dto.FieldValue("Acme"), in.Header["seller_name"])
	assert.Equal(t, dto.FieldValue("Yes"), in.Header["reverse_charge"])
	require.Len(t, in.Items, 1)
	assert.Equal(t, dto.FieldValue("100"), in.Items[0]["unit_price"])
	assert.Equal(t, dto.FieldValue("2"), in.Items[0]["quantity"])
}
