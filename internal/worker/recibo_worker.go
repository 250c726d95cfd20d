package worker

// recibo_worker.go
// Processes receipt jobs from QueueRecibos: fetch the sale or membership,
// render the PDF receipt, then hand off to the email queue.

import (
	"context"
	"encoding/json"
	"fmt"

	"gymplus/internal/infra"
	"gymplus/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReciboJobPayload is the job envelope sent to QueueRecibos.
// Tipo is "venta" or "membresia"; RefID is the row the receipt describes.
type ReciboJobPayload struct {
	Tipo    string `json:"tipo"`
	RefID   string `json:"ref_id"`
	ToEmail string `json:"to_email"`
}

type ReciboWorker struct {
	ventaRepo      repository.VentaRepository
	membresiaRepo  repository.MembresiaRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
}

func NewReciboWorker(
	ventaRepo repository.VentaRepository,
	membresiaRepo repository.MembresiaRepository,
	dispatcher *Dispatcher,
	pdfStoragePath string,
) *ReciboWorker {
	return &ReciboWorker{
		ventaRepo:      ventaRepo,
		membresiaRepo:  membresiaRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process renders the receipt PDF and enqueues the delivery email.
func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return
	}

	refID, err := uuid.Parse(payload.RefID)
	if err != nil {
		log.Error().Str("ref_id", payload.RefID).Msg("recibo_worker: invalid ref_id")
		return
	}

	var (
		pdfPath string
		subject string
		body    string
	)

	switch payload.Tipo {
	case "venta":
		venta, err := w.ventaRepo.FindByID(ctx, refID)
		if err != nil {
			log.Error().Err(err).Str("venta_id", payload.RefID).Msg("recibo_worker: venta not found")
			return
		}
		pdfPath, err = infra.GenerateReciboVentaPDF(venta, w.pdfStoragePath)
		if err != nil {
			log.Error().Err(err).Str("venta_id", payload.RefID).Msg("recibo_worker: PDF generation failed")
			return
		}
		subject = "GymPlus — Recibo de compra"
		body = fmt.Sprintf("Adjunto encontrarás tu recibo de compra.\nTotal: $%s", venta.Total.StringFixed(2))

	case "membresia":
		m, err := w.membresiaRepo.FindByID(ctx, refID)
		if err != nil {
			log.Error().Err(err).Str("membresia_id", payload.RefID).Msg("recibo_worker: membresia not found")
			return
		}
		pdfPath, err = infra.GenerateReciboMembresiaPDF(m, w.pdfStoragePath)
		if err != nil {
			log.Error().Err(err).Str("membresia_id", payload.RefID).Msg("recibo_worker: PDF generation failed")
			return
		}
		subject = "GymPlus — Recibo de membresia"
		body = fmt.Sprintf("Adjunto encontrarás el recibo de tu membresia.\nPrecio: $%s", m.Precio.StringFixed(2))
		if !m.SaldoPendiente.IsZero() {
			body += fmt.Sprintf("\nSaldo pendiente: $%s", m.SaldoPendiente.StringFixed(2))
		}

	default:
		log.Warn().Str("tipo", payload.Tipo).Msg("recibo_worker: unknown receipt type")
		return
	}

	log.Info().Str("pdf", pdfPath).Str("tipo", payload.Tipo).Str("ref_id", payload.RefID).Msg("recibo_worker: PDF generated")

	if payload.ToEmail == "" {
		return
	}
	emailJob := EmailJobPayload{
		Tipo:    payload.Tipo,
		ToEmail: payload.ToEmail,
		Subject: subject,
		Body:    body,
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		log.Warn().Err(err).Str("email", payload.ToEmail).Msg("recibo_worker: failed to enqueue email")
	}
}
