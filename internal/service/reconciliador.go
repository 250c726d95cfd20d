package service

// reconciliador.go
// Split-payment reconciliation shared by membership purchases (single and
// group) and product sales. The same math used to live in each flow with
// drifting tolerances; it is consolidated here with the two policies exposed
// separately: EstaSaldado (sales must match the total) and Restante
// (memberships may commit with a positive remainder as saldo pendiente).

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMontoInvalido  = errors.New("el monto del pago debe ser mayor a cero")
	ErrExcedeTotal    = errors.New("el pago excede el total requerido")
	ErrIndiceInvalido = errors.New("indice de pago fuera de rango")
)

// epsilonPago absorbs floating-point noise coming from operator-entered
// amounts; a payment may overshoot the required total by at most this much.
var epsilonPago = decimal.NewFromFloat(0.01)

// ToleranciaVenta is how far the payment sum may deviate from a sale total and
// still commit. Memberships do not use it — any remainder becomes saldo.
var ToleranciaVenta = decimal.NewFromFloat(0.05)

// PagoParcial is one entry of an in-progress split payment.
type PagoParcial struct {
	TipoPagoID uuid.UUID
	Monto      decimal.Decimal
}

// ReconciliadorPagos accumulates partial payments against a required total.
// It is a per-request value, not safe for concurrent use.
type ReconciliadorPagos struct {
	requerido decimal.Decimal
	pagos     []PagoParcial
}

func NewReconciliadorPagos(requerido decimal.Decimal) *ReconciliadorPagos {
	return &ReconciliadorPagos{requerido: requerido}
}

// AgregarPago validates and appends one entry. On error the list is unchanged.
func (r *ReconciliadorPagos) AgregarPago(tipoPagoID uuid.UUID, monto decimal.Decimal) error {
	if monto.LessThanOrEqual(decimal.Zero) {
		return ErrMontoInvalido
	}
	if r.TotalPagado().Add(monto).GreaterThan(r.requerido.Add(epsilonPago)) {
		return ErrExcedeTotal
	}
	r.pagos = append(r.pagos, PagoParcial{TipoPagoID: tipoPagoID, Monto: monto})
	return nil
}

// QuitarPago removes the entry at position i.
func (r *ReconciliadorPagos) QuitarPago(i int) error {
	if i < 0 || i >= len(r.pagos) {
		return ErrIndiceInvalido
	}
	r.pagos = append(r.pagos[:i], r.pagos[i+1:]...)
	return nil
}

// Pagos returns a copy of the current entries.
func (r *ReconciliadorPagos) Pagos() []PagoParcial {
	out := make([]PagoParcial, len(r.pagos))
	copy(out, r.pagos)
	return out
}

func (r *ReconciliadorPagos) TotalPagado() decimal.Decimal {
	total := decimal.Zero
	for _, p := range r.pagos {
		total = total.Add(p.Monto)
	}
	return total
}

// Restante is the amount still owed, floored at zero.
func (r *ReconciliadorPagos) Restante() decimal.Decimal {
	resto := r.requerido.Sub(r.TotalPagado())
	if resto.IsNegative() {
		return decimal.Zero
	}
	return resto
}

// EstaSaldado reports whether the paid total matches the required total within
// tolerancia. Pass ToleranciaVenta for the sale-commit policy.
func (r *ReconciliadorPagos) EstaSaldado(tolerancia decimal.Decimal) bool {
	return r.TotalPagado().Sub(r.requerido).Abs().LessThanOrEqual(tolerancia)
}

// SugerirMonto pre-fills the next amount field: whatever is still owed.
func (r *ReconciliadorPagos) SugerirMonto() decimal.Decimal {
	return r.Restante()
}
