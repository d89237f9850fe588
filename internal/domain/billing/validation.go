package billing

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-builder/internal/domain/entity"
)

// Las revisiones de este archivo son solo avisos: ninguna operación del motor
// se bloquea por ellas.

var (
	panPattern   = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
)

// Finding aviso sobre un campo de la factura.
type Finding struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type invoiceRules struct {
	SellerPAN         string      `json:"seller_pan" validate:"omitempty,pan"`
	SellerGST         string      `json:"seller_gst" validate:"omitempty,gstin"`
	BillingStateCode  string      `json:"billing_state_code" validate:"omitempty,statecode"`
	ShippingStateCode string      `json:"shipping_state_code" validate:"omitempty,statecode"`
	OrderDate         time.Time   `json:"order_date"`
	InvoiceDate       time.Time   `json:"invoice_date" validate:"omitempty,gtefield=OrderDate"`
	Items             []itemRules `json:"items" validate:"dive"`
}

type itemRules struct {
	UnitPrice       decimal.Decimal `json:"unit_price" validate:"gte=0"`
	Quantity        int64           `json:"quantity" validate:"gte=0"`
	DiscountPercent decimal.Decimal `json:"discount_percent" validate:"gte=0,lte=100"`
	TaxRatePercent  decimal.Decimal `json:"tax_rate_percent" validate:"gte=0,lte=100"`
}

var (
	rulesOnce     sync.Once
	rulesValidate *validator.Validate
)

func rules() *validator.Validate {
	rulesOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
		_ = v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
			return panPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
			return gstinPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("statecode", func(fl validator.FieldLevel) bool {
			return validStateCode(fl.Field().String())
		})
		rulesValidate = v
	})
	return rulesValidate
}

// validStateCode: códigos GST de estado/UT de 2 dígitos (01-38) y 97 (Other Territory).
func validStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return (n >= 1 && n <= 38) || n == 97
}

// CheckInvoice revisa formatos de PAN/GSTIN/códigos de estado, el orden de las fechas y
// rangos de los ítems. Devuelve los avisos en orden estable; nil si no hay ninguno.
func CheckInvoice(inv *entity.Invoice) []Finding {
	h := inv.Header
	in := invoiceRules{
		SellerPAN:         strings.TrimSpace(h.SellerPAN),
		SellerGST:         strings.TrimSpace(h.SellerGST),
		BillingStateCode:  strings.TrimSpace(h.BillingStateCode),
		ShippingStateCode: strings.TrimSpace(h.ShippingStateCode),
		OrderDate:         h.OrderDate.Time(),
		InvoiceDate:       h.InvoiceDate.Time(),
		Items:             make([]itemRules, 0, len(inv.Items)),
	}
	for _, it := range inv.Items {
		in.Items = append(in.Items, itemRules{
			UnitPrice:       it.UnitPrice,
			Quantity:        it.Quantity,
			DiscountPercent: it.DiscountPercent,
			TaxRatePercent:  it.TaxRatePercent,
		})
	}

	var findings []Finding
	var verrs validator.ValidationErrors
	if err := rules().Struct(in); errors.As(err, &verrs) {
		for _, fe := range verrs {
			findings = append(findings, toFinding(fe))
		}
	}

	// El GSTIN incluye el PAN del titular en las posiciones 3 a 12.
	if panPattern.MatchString(in.SellerPAN) && gstinPattern.MatchString(in.SellerGST) &&
		in.SellerGST[2:12] != in.SellerPAN {
		findings = append(findings, Finding{
			Field:   "seller_gst",
			Rule:    "gstin_pan",
			Message: "GSTIN does not contain the seller PAN",
		})
	}
	return findings
}

func toFinding(fe validator.FieldError) Finding {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	var msg string
	switch fe.Tag() {
	case "pan":
		msg = "PAN must be 10 characters: 5 letters, 4 digits, 1 letter"
	case "gstin":
		msg = "GSTIN must be a 15-character GST registration number"
	case "statecode":
		msg = "State/UT code must be a 2-digit GST state code"
	case "gtefield":
		msg = "invoice date is before the order date"
	case "gte":
		msg = fmt.Sprintf("%s should not be negative", fe.Field())
	case "lte":
		msg = fmt.Sprintf("%s should not exceed %s", fe.Field(), fe.Param())
	default:
		msg = fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
	return Finding{Field: field, Rule: fe.Tag(), Message: msg}
}
