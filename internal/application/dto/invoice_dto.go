package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldValue valor crudo de un campo tal como lo escribió el usuario.
// Acepta string, número, booleano o null en JSON; siempre se conserva como texto para que
// el parser de dominio decida (los números ilegibles valen 0 en modo permisivo).
// Los booleanos se traducen a "Yes"/"No" (reverse_charge).
type FieldValue string

// UnmarshalJSON implementa json.Unmarshaler.
func (v *FieldValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FieldValue(s)
	case 't', 'f':
		var flag bool
		if err := json.Unmarshal(b, &flag); err != nil {
			return err
		}
		if flag {
			*v = "Yes"
		} else {
			*v = "No"
		}
	case '{', '[':
		return fmt.Errorf("valor de campo: se espera texto o número, llegó %s", b[:1])
	default:
		// Número: se guarda el literal tal cual ("100.50", "1e2").
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*v = FieldValue(n.String())
	}
	return nil
}

// SetFieldRequest body para PATCH /api/sessions/:id/header y PATCH /api/sessions/:id/items/:pos.
type SetFieldRequest struct {
	Field string     `json:"field"`
	Value FieldValue `json:"value" swaggertype:"string"`
}

// InvoiceInput documento completo de factura (CLI render). Las claves de header e items son
// los nombres de campo de la API (seller_name, unit_price, ...).
type InvoiceInput struct {
	Header map[string]FieldValue   `json:"header"`
	Items  []map[string]FieldValue `json:"items"`
}

// HeaderDTO cabecera de la factura en respuestas. Fechas en YYYY-MM-DD o vacías.
type HeaderDTO struct {
	SellerName               string `json:"seller_name"`
	SellerAddress            string `json:"seller_address"`
	SellerCityStatePincode   string `json:"seller_city_state_pincode"`
	SellerPAN                string `json:"seller_pan"`
	SellerGST                string `json:"seller_gst"`
	PlaceOfSupply            string `json:"place_of_supply"`
	BillingName              string `json:"billing_name"`
	BillingAddress           string `json:"billing_address"`
	BillingCityStatePincode  string `json:"billing_city_state_pincode"`
	BillingStateCode         string `json:"billing_state_code"`
	ShippingName             string `json:"shipping_name"`
	ShippingAddress          string `json:"shipping_address"`
	ShippingCityStatePincode string `json:"shipping_city_state_pincode"`
	ShippingStateCode        string `json:"shipping_state_code"`
	OrderNumber              string `json:"order_number"`
	OrderDate                string `json:"order_date"`
	InvoiceNumber            string `json:"invoice_number"`
	InvoiceDate              string `json:"invoice_date"`
	ReverseCharge            string `json:"reverse_charge"`
}

// LineItemResponse línea de factura. Los importes van con 2 decimales como texto.
type LineItemResponse struct {
	Position        int    `json:"position"` // base cero
	Description     string `json:"description"`
	UnitPrice       string `json:"unit_price"`
	Quantity        int64  `json:"quantity"`
	DiscountPercent string `json:"discount_percent"`
	TaxRatePercent  string `json:"tax_rate_percent"`
	NetAmount       string `json:"net_amount"`
}

// AmountInWordsDTO total en palabras.
type AmountInWordsDTO struct {
	Rupees string `json:"rupees"`
	Paise  string `json:"paise"`
	Text   string `json:"text"`
}

// SessionResponse vista completa de un formulario de factura.
type SessionResponse struct {
	ID                string             `json:"id"`
	Header            HeaderDTO          `json:"header"`
	Items             []LineItemResponse `json:"items"`
	Total             string             `json:"total"`
	AmountInWords     AmountInWordsDTO   `json:"amount_in_words"`
	HasSignature      bool               `json:"has_signature"`
	SignatureMimeType string             `json:"signature_mime_type,omitempty"`
	PreviewImage      string             `json:"preview_image,omitempty"` // data URL
	ErrorText         string             `json:"error_text,omitempty"`
	PreviewMode       bool               `json:"preview_mode"`
}

// FindingDTO aviso de validación de cabecera/ítems. No bloquea cálculo ni exportación.
type FindingDTO struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ChecksResponse respuesta de GET /api/sessions/:id/checks.
type ChecksResponse struct {
	Valid    bool         `json:"valid"`
	Findings []FindingDTO `json:"findings"`
}
