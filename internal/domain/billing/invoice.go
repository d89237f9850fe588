package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-builder/internal/domain"
	"github.com/jhoicas/invoice-builder/internal/domain/entity"
)

// DefaultTaxRatePercent tasa de impuesto con la que nace cada línea.
var DefaultTaxRatePercent = decimal.NewFromInt(18)

// LineItemField nombre de un campo editable de la línea.
type LineItemField string

const (
	FieldDescription     LineItemField = "description"
	FieldUnitPrice       LineItemField = "unit_price"
	FieldQuantity        LineItemField = "quantity"
	FieldDiscountPercent LineItemField = "discount_percent"
	FieldTaxRatePercent  LineItemField = "tax_rate_percent"
	FieldNetAmount       LineItemField = "net_amount" // solo lectura
)

// HeaderField nombre de un campo editable de la cabecera.
type HeaderField string

const (
	FieldSellerName               HeaderField = "seller_name"
	FieldSellerAddress            HeaderField = "seller_address"
	FieldSellerCityStatePincode   HeaderField = "seller_city_state_pincode"
	FieldSellerPAN                HeaderField = "seller_pan"
	FieldSellerGST                HeaderField = "seller_gst"
	FieldPlaceOfSupply            HeaderField = "place_of_supply"
	FieldBillingName              HeaderField = "billing_name"
	FieldBillingAddress           HeaderField = "billing_address"
	FieldBillingCityStatePincode  HeaderField = "billing_city_state_pincode"
	FieldBillingStateCode         HeaderField = "billing_state_code"
	FieldShippingName             HeaderField = "shipping_name"
	FieldShippingAddress          HeaderField = "shipping_address"
	FieldShippingCityStatePincode HeaderField = "shipping_city_state_pincode"
	FieldShippingStateCode        HeaderField = "shipping_state_code"
	FieldOrderNumber              HeaderField = "order_number"
	FieldOrderDate                HeaderField = "order_date"
	FieldInvoiceNumber            HeaderField = "invoice_number"
	FieldInvoiceDate              HeaderField = "invoice_date"
	FieldReverseCharge            HeaderField = "reverse_charge"
)

var headerText = map[HeaderField]func(h *entity.InvoiceHeader) *string{
	FieldSellerName:               func(h *entity.InvoiceHeader) *string { return &h.SellerName },
	FieldSellerAddress:            func(h *entity.InvoiceHeader) *string { return &h.SellerAddress },
	FieldSellerCityStatePincode:   func(h *entity.InvoiceHeader) *string { return &h.SellerCityStatePincode },
	FieldSellerPAN:                func(h *entity.InvoiceHeader) *string { return &h.SellerPAN },
	FieldSellerGST:                func(h *entity.InvoiceHeader) *string { return &h.SellerGST },
	FieldPlaceOfSupply:            func(h *entity.InvoiceHeader) *string { return &h.PlaceOfSupply },
	FieldBillingName:              func(h *entity.InvoiceHeader) *string { return &h.BillingName },
	FieldBillingAddress:           func(h *entity.InvoiceHeader) *string { return &h.BillingAddress },
	FieldBillingCityStatePincode:  func(h *entity.InvoiceHeader) *string { return &h.BillingCityStatePincode },
	FieldBillingStateCode:         func(h *entity.InvoiceHeader) *string { return &h.BillingStateCode },
	FieldShippingName:             func(h *entity.InvoiceHeader) *string { return &h.ShippingName },
	FieldShippingAddress:          func(h *entity.InvoiceHeader) *string { return &h.ShippingAddress },
	FieldShippingCityStatePincode: func(h *entity.InvoiceHeader) *string { return &h.ShippingCityStatePincode },
	FieldShippingStateCode:        func(h *entity.InvoiceHeader) *string { return &h.ShippingStateCode },
	FieldOrderNumber:              func(h *entity.InvoiceHeader) *string { return &h.OrderNumber },
	FieldInvoiceNumber:            func(h *entity.InvoiceHeader) *string { return &h.InvoiceNumber },
}

// NewLineItem línea por defecto: cantidad 1, impuesto 18%, resto en cero/vacío.
func NewLineItem() entity.LineItem {
	return entity.LineItem{
		UnitPrice:       decimal.Zero,
		Quantity:        1,
		DiscountPercent: decimal.Zero,
		TaxRatePercent:  DefaultTaxRatePercent,
		NetAmount:       decimal.Zero,
	}
}

// NewInvoice crea la factura con una línea vacía y reverse charge "No".
func NewInvoice() *entity.Invoice {
	inv := &entity.Invoice{
		Header: entity.InvoiceHeader{ReverseCharge: entity.ReverseChargeNo},
		Items:  []entity.LineItem{NewLineItem()},
	}
	Recalculate(inv)
	return inv
}

// Recalculate recalcula el neto de cada línea y luego el total.
// Toda operación que muta ítems lo invoca antes de retornar.
func Recalculate(inv *entity.Invoice) {
	for i := range inv.Items {
		item := &inv.Items[i]
		item.NetAmount = NetAmount(item.UnitPrice, item.Quantity, item.DiscountPercent, item.TaxRatePercent)
	}
	inv.Total = ComputeTotal(inv.Items)
}

// AddLineItem agrega una línea por defecto al final. No hay límite de líneas.
func AddLineItem(inv *entity.Invoice) {
	inv.Items = append(inv.Items, NewLineItem())
	Recalculate(inv)
}

// RemoveLineItem elimina la línea en la posición pos (base cero) conservando el orden del resto.
// Una posición fuera de rango devuelve ErrLineItemOutOfRange y no modifica la factura.
func RemoveLineItem(inv *entity.Invoice, pos int) error {
	if pos < 0 || pos >= len(inv.Items) {
		return fmt.Errorf("%w: %d (hay %d)", domain.ErrLineItemOutOfRange, pos, len(inv.Items))
	}
	items := make([]entity.LineItem, 0, len(inv.Items)-1)
	items = append(items, inv.Items[:pos]...)
	items = append(items, inv.Items[pos+1:]...)
	inv.Items = items
	Recalculate(inv)
	return nil
}

// SetLineItemField asigna un campo de la línea pos desde texto crudo y recalcula.
// En modo permisivo los números ilegibles valen 0; en estricto se devuelve ErrInvalidNumber
// sin tocar la línea.
func SetLineItemField(inv *entity.Invoice, pos int, field LineItemField, raw string, p Parser) error {
	if pos < 0 || pos >= len(inv.Items) {
		return fmt.Errorf("%w: %d (hay %d)", domain.ErrLineItemOutOfRange, pos, len(inv.Items))
	}
	item := &inv.Items[pos]
	switch field {
	case FieldDescription:
		item.Description = raw
	case FieldUnitPrice, FieldDiscountPercent, FieldTaxRatePercent:
		v, err := p.Amount(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		switch field {
		case FieldUnitPrice:
			item.UnitPrice = v
		case FieldDiscountPercent:
			item.DiscountPercent = v
		default:
			item.TaxRatePercent = v
		}
	case FieldQuantity:
		n, err := p.Quantity(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		item.Quantity = n
	case FieldNetAmount:
		return fmt.Errorf("%w: net_amount es derivado", domain.ErrInvalidInput)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	Recalculate(inv)
	return nil
}

// SetHeaderField asigna un campo de cabecera. Las fechas aceptan YYYY-MM-DD o vacío;
// reverse charge acepta Yes/No.
func SetHeaderField(inv *entity.Invoice, field HeaderField, raw string) error {
	h := &inv.Header
	if get, ok := headerText[field]; ok {
		*get(h) = raw
		return nil
	}
	switch field {
	case FieldOrderDate, FieldInvoiceDate:
		d, err := entity.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, field, err)
		}
		if field == FieldOrderDate {
			h.OrderDate = d
		} else {
			h.InvoiceDate = d
		}
		return nil
	case FieldReverseCharge:
		rc, err := entity.ParseReverseCharge(raw)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		h.ReverseCharge = rc
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
}

// NormalizeSignatureMime devuelve el tipo canónico si es PNG o JPEG ("image/jpg" cuenta como JPEG).
func NormalizeSignatureMime(mimeType string) (string, bool) {
	m := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(m, ';'); i >= 0 {
		m = strings.TrimSpace(m[:i])
	}
	switch m {
	case entity.MimePNG:
		return entity.MimePNG, true
	case entity.MimeJPEG, "image/jpg":
		return entity.MimeJPEG, true
	}
	return "", false
}

// SetSignatureImage reemplaza la firma. Cualquier tipo distinto de PNG/JPEG se rechaza con
// ErrUnsupportedSignatureType y la firma previa queda intacta.
func SetSignatureImage(inv *entity.Invoice, data []byte, mimeType string) error {
	m, ok := NormalizeSignatureMime(mimeType)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedSignatureType, mimeType)
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	inv.Signature = &entity.Signature{Data: buf, MimeType: m}
	return nil
}

// ClearSignatureImage quita la firma.
func ClearSignatureImage(inv *entity.Invoice) {
	inv.Signature = nil
}
