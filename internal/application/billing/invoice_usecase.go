package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/invoice-builder/internal/application/dto"
	"github.com/jhoicas/invoice-builder/internal/application/session"
	"github.com/jhoicas/invoice-builder/internal/domain"
	dombilling "github.com/jhoicas/invoice-builder/internal/domain/billing"
	"github.com/jhoicas/invoice-builder/pkg/logger"
)

// Options comportamiento configurable del formulario.
type Options struct {
	StrictNumbers     bool  // números ilegibles -> ErrInvalidNumber en vez de 0
	MaxSignatureBytes int64 // <= 0 sin límite
}

// InvoiceUseCase opera sobre los formularios de factura abiertos: cada método es un evento
// de la interfaz (editar un campo, agregar/quitar una línea, subir la firma...) que se ejecuta
// completo bajo el lock de la sesión.
type InvoiceUseCase struct {
	store   *session.Store
	parser  dombilling.Parser
	words   AmountInWords
	metrics MetricsRecorder
	log     *logger.Logger
	opts    Options
}

// NewInvoiceUseCase construye el caso de uso. metrics y log pueden ser nil.
func NewInvoiceUseCase(
	store *session.Store,
	words AmountInWords,
	metrics MetricsRecorder,
	log *logger.Logger,
	opts Options,
) *InvoiceUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceUseCase{
		store:   store,
		parser:  dombilling.Parser{Strict: opts.StrictNumbers},
		words:   words,
		metrics: metrics,
		log:     log,
		opts:    opts,
	}
}

// Create abre un formulario con una línea por defecto.
func (uc *InvoiceUseCase) Create(ctx context.Context) *dto.SessionResponse {
	sess := uc.store.Create()
	uc.metrics.Operation("create_session", "ok")
	uc.metrics.SessionsActive(uc.store.Len())
	uc.log.Session(sess.ID).Info().Msg("formulario de factura creado")
	return uc.view(sess)
}

// Get devuelve la vista actual del formulario.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*dto.SessionResponse, error) {
	sess, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	return uc.view(sess), nil
}

// Delete descarta el formulario.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.store.Delete(id); err != nil {
		return err
	}
	uc.metrics.Operation("delete_session", "ok")
	uc.metrics.SessionsActive(uc.store.Len())
	uc.log.Session(id).Info().Msg("formulario de factura descartado")
	return nil
}

// SetHeaderField asigna un campo de la cabecera (vendedor, facturación, envío, pedido).
func (uc *InvoiceUseCase) SetHeaderField(ctx context.Context, id string, in dto.SetFieldRequest) (*dto.SessionResponse, error) {
	return uc.mutate(id, "set_header", func(st *session.State) error {
		return dombilling.SetHeaderField(st.Invoice, dombilling.HeaderField(in.Field), string(in.Value))
	})
}

// AddLineItem agrega una línea por defecto al final.
func (uc *InvoiceUseCase) AddLineItem(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return uc.mutate(id, "add_item", func(st *session.State) error {
		dombilling.AddLineItem(st.Invoice)
		return nil
	})
}

// SetLineItemField asigna un campo de la línea pos (base cero) y recalcula neto y total.
func (uc *InvoiceUseCase) SetLineItemField(ctx context.Context, id string, pos int, in dto.SetFieldRequest) (*dto.SessionResponse, error) {
	return uc.mutate(id, "set_item", func(st *session.State) error {
		return dombilling.SetLineItemField(st.Invoice, pos, dombilling.LineItemField(in.Field), string(in.Value), uc.parser)
	})
}

// RemoveLineItem quita la línea pos (base cero).
func (uc *InvoiceUseCase) RemoveLineItem(ctx context.Context, id string, pos int) (*dto.SessionResponse, error) {
	return uc.mutate(id, "remove_item", func(st *session.State) error {
		return dombilling.RemoveLineItem(st.Invoice, pos)
	})
}

// UploadSignature reemplaza la imagen de firma. Un tipo no permitido deja la firma previa
// intacta y fija el texto de error visible del formulario; una firma aceptada lo limpia.
func (uc *InvoiceUseCase) UploadSignature(ctx context.Context, id string, data []byte, mimeType string) (*dto.SessionResponse, error) {
	if uc.opts.MaxSignatureBytes > 0 && int64(len(data)) > uc.opts.MaxSignatureBytes {
		uc.metrics.Operation("upload_signature", "rejected")
		return nil, fmt.Errorf("upload_signature: %w (máximo %d bytes)", domain.ErrSignatureTooLarge, uc.opts.MaxSignatureBytes)
	}
	return uc.mutate(id, "upload_signature", func(st *session.State) error {
		if err := dombilling.SetSignatureImage(st.Invoice, data, mimeType); err != nil {
			if errors.Is(err, domain.ErrUnsupportedSignatureType) {
				st.ErrorText = domain.SignatureTypeMessage
			}
			return err
		}
		st.PreviewImage = session.DataURL(st.Invoice.Signature)
		st.ErrorText = ""
		return nil
	})
}

// ClearSignature quita la firma y su vista previa.
func (uc *InvoiceUseCase) ClearSignature(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return uc.mutate(id, "clear_signature", func(st *session.State) error {
		dombilling.ClearSignatureImage(st.Invoice)
		st.PreviewImage = ""
		st.ErrorText = ""
		return nil
	})
}

// TogglePreview alterna entre edición y vista previa del documento.
func (uc *InvoiceUseCase) TogglePreview(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return uc.mutate(id, "toggle_preview", func(st *session.State) error {
		st.PreviewMode = !st.PreviewMode
		return nil
	})
}

// Checks ejecuta las validaciones de formato (PAN, GSTIN, códigos de estado, fechas, rangos).
// Son avisos: nunca bloquean el cálculo ni la exportación.
func (uc *InvoiceUseCase) Checks(ctx context.Context, id string) (*dto.ChecksResponse, error) {
	sess, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	st := sess.Snapshot()
	findings := dombilling.CheckInvoice(st.Invoice)
	out := &dto.ChecksResponse{Valid: len(findings) == 0, Findings: make([]dto.FindingDTO, 0, len(findings))}
	for _, f := range findings {
		out.Findings = append(out.Findings, dto.FindingDTO{Field: f.Field, Rule: f.Rule, Message: f.Message})
	}
	return out, nil
}

// Document arma el documento a renderizar a partir del estado actual del formulario.
func (uc *InvoiceUseCase) Document(ctx context.Context, id string) (*InvoiceDocument, error) {
	sess, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	st := sess.Snapshot()
	return NewDocument(st.Invoice, uc.words), nil
}

// EvictIdle descarta formularios inactivos; lo invoca el janitor del store.
func (uc *InvoiceUseCase) EvictIdle(n int) {
	uc.metrics.SessionsActive(uc.store.Len())
	uc.log.Info().Int("evicted", n).Msg("formularios inactivos descartados")
}

func (uc *InvoiceUseCase) mutate(id, op string, fn func(st *session.State) error) (*dto.SessionResponse, error) {
	sess, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	log := uc.log.Session(id)
	if err := sess.Update(fn); err != nil {
		uc.metrics.Operation(op, "rejected")
		log.Warn().Err(err).Str("operation", op).Msg("operación rechazada")
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	uc.metrics.Operation(op, "ok")
	log.Debug().Str("operation", op).Msg("factura actualizada")
	return uc.view(sess), nil
}

func (uc *InvoiceUseCase) view(sess *session.Session) *dto.SessionResponse {
	return toSessionResponse(sess.ID, sess.Snapshot(), uc.words)
}
