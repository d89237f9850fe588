// Package session mantiene el estado de edición de cada formulario de factura:
// el agregado entity.Invoice más los campos transitorios de la interfaz
// (imagen de vista previa, texto de error, total calculado y modo vista previa).
package session

import (
	"encoding/base64"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-builder/internal/domain/billing"
	"github.com/jhoicas/invoice-builder/internal/domain/entity"
)

// State estado de un formulario. Solo se toca dentro de Session.Update.
type State struct {
	Invoice      *entity.Invoice
	PreviewImage string // data URL de la firma ("data:image/png;base64,...")
	ErrorText    string
	Total        decimal.Decimal
	PreviewMode  bool
}

// Session un formulario en edición. Cada operación corre completa bajo su propio lock.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	state    State
	lastSeen atomic.Int64 // unix nanos
}

func newSession(id string, now time.Time) *Session {
	s := &Session{
		ID:        id,
		CreatedAt: now,
		state:     State{Invoice: billing.NewInvoice()},
	}
	s.state.Total = s.state.Invoice.Total
	s.lastSeen.Store(now.UnixNano())
	return s
}

// Update ejecuta fn con acceso exclusivo al estado. Al terminar sincroniza el total
// expuesto con el del agregado, haya error o no.
func (s *Session) Update(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := fn(&s.state)
	s.state.Total = s.state.Invoice.Total
	s.lastSeen.Store(time.Now().UnixNano())
	return err
}

// Snapshot copia el estado para leerlo fuera del lock.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen.Store(time.Now().UnixNano())
	st := s.state
	st.Invoice = cloneInvoice(s.state.Invoice)
	return st
}

// LastSeen último acceso a la sesión.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// DataURL arma la URL embebible de una imagen, igual que un lector de archivos del navegador.
func DataURL(sig *entity.Signature) string {
	if sig == nil {
		return ""
	}
	return "data:" + sig.MimeType + ";base64," + base64.StdEncoding.EncodeToString(sig.Data)
}

// La firma no se copia: SetSignatureImage siempre instala un buffer nuevo.
func cloneInvoice(inv *entity.Invoice) *entity.Invoice {
	if inv == nil {
		return nil
	}
	out := *inv
	out.Items = append([]entity.LineItem(nil), inv.Items...)
	return &out
}
