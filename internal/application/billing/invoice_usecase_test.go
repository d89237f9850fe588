package billing_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-builder/internal/application/billing"
	"github.com/jhoicas/invoice-builder/internal/application/dto"
	"github.com/jhoicas/invoice-builder/internal/application/session"
	"github.com/jhoicas/invoice-builder/internal/domain"
	"github.com/jhoicas/invoice-builder/pkg/words"
)

type fakeMetrics struct {
	mu  sync.Mutex
	ops map[string]int
	exp map[string]int
	act int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{ops: map[string]int{}, exp: map[string]int{}}
}

func (m *fakeMetrics) Operation(op, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops[op+"/"+result]++
}

func (m *fakeMetrics) Export(format, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exp[format+"/"+result]++
}

func (m *fakeMetrics) SessionsActive(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.act = n
}

func newUseCase(opts billing.Options) (*billing.InvoiceUseCase, *fakeMetrics) {
	m := newFakeMetrics()
	uc := billing.NewInvoiceUseCase(session.NewStore(time.Hour), words.NewFormatter(), m, nil, opts)
	return uc, m
}

func field(name, value string) dto.SetFieldRequest {
	return dto.SetFieldRequest{Field: name, Value: dto.FieldValue(value)}
}

func TestInvoiceUseCase_CreateYGet(t *testing.T) {
	uc, m := newUseCase(billing.Options{})
	ctx := context.Background()

	created := uc.Create(ctx)
	require.Len(t, created.Items, 1)
	assert.Equal(t, "0.00", created.Total)
	assert.Equal(t, "18", created.Items[0].TaxRatePercent)
	assert.Equal(t, int64(1), created.Items[0].Quantity)
	assert.Equal(t, "No", created.Header.ReverseCharge)
	assert.Equal(t, "zero rupees and zero paise", created.AmountInWords.Text)
	assert.Equal(t, 1, m.act)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = uc.Get(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceUseCase_FlujoCompleto(t *testing.T) {
	uc, m := newUseCase(billing.Options{})
	ctx := context.Background()
	id := uc.Create(ctx).ID

	_, err := uc.SetLineItemField(ctx, id, 0, field("description", "Widget"))
	require.NoError(t, err)
	_, err = uc.SetLineItemField(ctx, id, 0, field("unit_price", "100"))
	require.NoError(t, err)
	_, err = uc.SetLineItemField(ctx, id, 0, field("quantity", "2"))
	require.NoError(t, err)
	resp, err := uc.SetLineItemField(ctx, id, 0, field("discount_percent", "10"))
	require.NoError(t, err)

	assert.Equal(t, "212.40", resp.Items[0].NetAmount)
	assert.Equal(t, "212.40", resp.Total)
	assert.Equal(t, "two hundred twelve rupees and forty paise", resp.AmountInWords.Text)

	resp, err = uc.AddLineItem(ctx, id)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 1, resp.Items[1].Position)
	assert.Equal(t, "0.00", resp.Items[1].NetAmount)
	assert.Equal(t, "212.40", resp.Total)

	resp, err = uc.RemoveLineItem(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "0.00", resp.Total)

	assert.Equal(t, 4, m.ops["set_item/ok"])
	assert.Equal(t, 1, m.ops["add_item/ok"])
	assert.Equal(t, 1, m.ops["remove_item/ok"])
}

func TestInvoiceUseCase_RemoveFueraDeRango(t *testing.T) {
	uc, m := newUseCase(billing.Options{})
	ctx := context.Background()
	id := uc.Create(ctx).ID

	_, err := uc.RemoveLineItem(ctx, id, 5)
	assert.ErrorIs(t, err, domain.ErrLineItemOutOfRange)
	assert.Equal(t, 1, m.ops["remove_item/rejected"])

	got, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestInvoiceUseCase_NumerosPermisivosYEstrictos(t *testing.T) {
	ctx := context.Background()

	lenient, _ := newUseCase(billing.Options{})
	id := lenient.Create(ctx).ID
	resp, err := lenient.SetLineItemField(ctx, id, 0, field("unit_price", "abc"))
	require.NoError(t, err)
	assert.Equal(t, "0.00", resp.Items[0].UnitPrice)

	strict, _ := newUseCase(billing.Options{StrictNumbers: true})
	id = strict.Create(ctx).ID
	_, err = strict.SetLineItemField(ctx, id, 0, field("unit_price", "100"))
	require.NoError(t, err)
	_, err = strict.SetLineItemField(ctx, id, 0, field("unit_price", "abc"))
	assert.ErrorIs(t, err, domain.ErrInvalidNumber)

	got, err := strict.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "100.00", got.Items[0].UnitPrice, "el valor previo se conserva")
}

func TestInvoiceUseCase_ExponenteEnormeValeCero(t *testing.T) {
	uc, _ := newUseCase(billing.Options{})
	ctx := context.Background()
	id := uc.Create(ctx).ID

	start := time.Now()
	resp, err := uc.SetLineItemField(ctx, id, 0, field("unit_price", "1e999999999"))
	require.NoError(t, err)
	assert.Equal(t, "0.00", resp.Items[0].UnitPrice)
	assert.Equal(t, "0.00", resp.Total)
	assert.Equal(t, "zero rupees and zero paise", resp.AmountInWords.Text)

	_, err = uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestInvoiceUseCase_SetHeaderField(t *testing.T) {
	uc, _ := newUseCase(billing.Options{})
	ctx := context.Background()
	id := uc.Create(ctx).ID

	resp, err := uc.SetHeaderField(ctx, id, field("seller_name", "Acme Traders"))
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", resp.Header.SellerName)

	resp, err = uc.SetHeaderField(ctx, id, field("invoice_date", "2024-03-15"))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", resp.Header.InvoiceDate)

	resp, err = uc.SetHeaderField(ctx, id, field("reverse_charge", "Yes"))
	require.NoError(t, err)
	assert.Equal(t, "Yes", resp.Header.ReverseCharge)

	_, err = uc.SetHeaderField(ctx, id, field("invoice_date", "15/03/2024"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SetHeaderField(ctx, id, field("color", "azul"))
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestInvoiceUseCase_Firma(t *testing.T) {
	uc, m := newUseCase(billing.Options{MaxSignatureBytes: 8})
	ctx := context.Background()
	id := uc.Create(ctx).ID

	// Tipo no permitido: se rechaza, la firma no cambia y aparece el texto de error.
	_, err := uc.UploadSignature(ctx, id, []byte("BM"), "image/bmp")
	assert.ErrorIs(t, err, domain.ErrUnsupportedSignatureType)
	got, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.HasSignature)
	assert.Equal(t, domain.SignatureTypeMessage, got.ErrorText)
	assert.Equal(t, 1, m.ops["upload_signature/rejected"])

	// PNG aceptado: limpia el error y genera la vista previa.
	resp, err := uc.UploadSignature(ctx, id, []byte("png"), "image/png")
	require.NoError(t, err)
	assert.True(t, resp.HasSignature)
	assert.Equal(t, "image/png", resp.SignatureMimeType)
	assert.Empty(t, resp.ErrorText)
	assert.Equal(t, "data:image/png;base64,cG5n", resp.PreviewImage)

	// Demasiado grande.
	_, err = uc.UploadSignature(ctx, id, []byte("123456789"), "image/png")
	assert.ErrorIs(t, err, domain.ErrSignatureTooLarge)

	// La última subida válida gana.
	resp, err = uc.UploadSignature(ctx, id, []byte("jpg"), "image/jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", resp.SignatureMimeType)

	resp, err = uc.ClearSignature(ctx, id)
	require.NoError(t, err)
	assert.False(t, resp.HasSignature)
	assert.Empty(t, resp.PreviewImage)
}

func TestInvoiceUseCase_TogglePreview(t *testing.T) {
	uc, _ := newUseCase(billing.Options{})
	ctx := context.Background()
	id := uc.Create(ctx).ID

	resp, err := uc.TogglePreview(ctx, id)
	require.NoError(t, err)
	assert.True(t, resp.PreviewMode)

	resp, err = uc.TogglePreview(ctx, id)
	require.NoError(t, err)
	assert.False(t, resp.PreviewMode)
}

func TestInvoiceUseCase_Checks(t *testing.T) {
	uc, _ := newUseCase(billing.Options{})
	ctx := context.Background()
	id := uc.Create(ctx).ID

	checks, err := uc.Checks(ctx, id)
	require.NoError(t, err)
	assert.True(t, checks.Valid)
	assert.Empty(t, checks.Findings)

	_, err = uc.SetHeaderField(ctx, id, field("seller_pan", "123"))
	require.NoError(t, err)
	checks, err = uc.Checks(ctx, id)
	require.NoError(t, err)
	assert.False(t, checks.Valid)
	require.NotEmpty(t, checks.Findings)
	assert.Equal(t, "seller_pan", checks.Findings[0].Field)
}

func TestInvoiceUseCase_Delete(t *testing.T) {
	uc, m := newUseCase(billing.Options{})
	ctx := context.Background()
	id := uc.Create(ctx).ID

	require.NoError(t, uc.Delete(ctx, id))
	assert.Equal(t, 0, m.act)
	assert.ErrorIs(t, uc.Delete(ctx, id), domain.ErrNotFound)
	_, err := uc.AddLineItem(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceUseCase_EdicionesConcurrentes(t *testing.T) {
	uc, _ := newUseCase(billing.Options{})
	ctx := context.Background()
	id := uc.Create(ctx).ID

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.AddLineItem(ctx, id)
		}()
	}
	wg.Wait()

	got, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, got.Items, 21)
}
