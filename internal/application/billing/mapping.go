package billing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/invoice-builder/internal/application/dto"
	"github.com/jhoicas/invoice-builder/internal/application/session"
	dombilling "github.com/jhoicas/invoice-builder/internal/domain/billing"
	"github.com/jhoicas/invoice-builder/internal/domain/entity"
)

// NewDocument arma el documento a renderizar. inv ya debe estar recalculada.
func NewDocument(inv *entity.Invoice, w AmountInWords) *InvoiceDocument {
	return &InvoiceDocument{
		Invoice:       *inv,
		AmountInWords: w.Words(inv.Total),
	}
}

// BuildInvoice construye una factura completa aplicando los mismos eventos que la interfaz:
// cada campo de cabecera, y por cada línea un alta seguida de sus campos. Las claves se
// aplican en orden alfabético para que el resultado no dependa del orden del mapa.
// Sin líneas en la entrada queda la línea por defecto.
func BuildInvoice(in dto.InvoiceInput, p dombilling.Parser) (*entity.Invoice, error) {
	inv := dombilling.NewInvoice()
	for _, k := range sortedKeys(in.Header) {
		if err := dombilling.SetHeaderField(inv, dombilling.HeaderField(k), string(in.Header[k])); err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}
	}
	for i, item := range in.Items {
		if i > 0 {
			dombilling.AddLineItem(inv)
		}
		for _, k := range sortedKeys(item) {
			if err := dombilling.SetLineItemField(inv, i, dombilling.LineItemField(k), string(item[k]), p); err != nil {
				return nil, fmt.Errorf("items[%d]: %w", i, err)
			}
		}
	}
	return inv, nil
}

// DocumentFilename nombre de descarga: invoice.<ext> o invoice_<número>.<ext>.
func DocumentFilename(inv *entity.Invoice, ext string) string {
	number := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		case r == ' ', r == '/', r == '\\', r == '_':
			return '_'
		}
		return -1
	}, strings.TrimSpace(inv.Header.InvoiceNumber))
	if number == "" {
		return "invoice." + ext
	}
	return "invoice_" + number + "." + ext
}

func toSessionResponse(id string, st session.State, w AmountInWords) *dto.SessionResponse {
	inv := st.Invoice
	h := inv.Header
	amount := w.Words(inv.Total)
	out := &dto.SessionResponse{
		ID: id,
		Header: dto.HeaderDTO{
			SellerName:               h.SellerName,
			SellerAddress:            h.SellerAddress,
			SellerCityStatePincode:   h.SellerCityStatePincode,
			SellerPAN:                h.SellerPAN,
			SellerGST:                h.SellerGST,
			PlaceOfSupply:            h.PlaceOfSupply,
			BillingName:              h.BillingName,
			BillingAddress:           h.BillingAddress,
			BillingCityStatePincode:  h.BillingCityStatePincode,
			BillingStateCode:         h.BillingStateCode,
			ShippingName:             h.ShippingName,
			ShippingAddress:          h.ShippingAddress,
			ShippingCityStatePincode: h.ShippingCityStatePincode,
			ShippingStateCode:        h.ShippingStateCode,
			OrderNumber:              h.OrderNumber,
			OrderDate:                h.OrderDate.String(),
			InvoiceNumber:            h.InvoiceNumber,
			InvoiceDate:              h.InvoiceDate.String(),
			ReverseCharge:            string(h.ReverseCharge),
		},
		Items: make([]dto.LineItemResponse, 0, len(inv.Items)),
		Total: inv.Total.StringFixed(2),
		AmountInWords: dto.AmountInWordsDTO{
			Rupees: amount.Rupees,
			Paise:  amount.Paise,
			Text:   amount.String(),
		},
		HasSignature: inv.Signature != nil,
		PreviewImage: st.PreviewImage,
		ErrorText:    st.ErrorText,
		PreviewMode:  st.PreviewMode,
	}
	if inv.Signature != nil {
		out.SignatureMimeType = inv.Signature.MimeType
	}
	for i, it := range inv.Items {
		out.Items = append(out.Items, dto.LineItemResponse{
			Position:        i,
			Description:     it.Description,
			UnitPrice:       it.UnitPrice.StringFixed(2),
			Quantity:        it.Quantity,
			DiscountPercent: it.DiscountPercent.String(),
			TaxRatePercent:  it.TaxRatePercent.String(),
			NetAmount:       it.NetAmount.StringFixed(2),
		})
	}
	return out
}

func sortedKeys(m map[string]dto.FieldValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
