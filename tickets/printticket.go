package tickets

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"cloudstage/middleware"
	"cloudstage/store"
	"cloudstage/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// PrintTicket renders the holder's ticket as a PDF with a scannable QR code.
func PrintTicket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	email := middleware.EmailFromRequest(r)

	ticket, err := store.Tickets.ForUserAndEvent(email, eventID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Ticket not found")
		return
	}
	event, err := store.Events.Get(eventID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	// QR content carries event, code and issue timestamp for scanners
	qrData := fmt.Sprintf("eid=%s&code=%s&ts=%d", eventID, ticket.UniqueCode, time.Now().Unix())
	qrCode, err := qrcode.Encode(qrData, qrcode.Medium, 128)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate ticket")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	pdf.SetFillColor(245, 245, 255)

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "CloudStage Ticket", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	holder := email
	if ticket.GuestName != "" {
		holder = ticket.GuestName
	}
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, fmt.Sprintf(
		"Event: %s\nArtist: %s\nHolder: %s\nStarts: %s\nCode: %s",
		event.Title,
		event.ArtistName,
		holder,
		event.StartDateTime.Format("02 Jan 2006 15:04"),
		ticket.UniqueCode,
	), "", "L", false)

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrCode))
	pdf.ImageOptions("qr", 150, 60, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Present this ticket when the stream goes live.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate ticket")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=ticket-"+eventID+".pdf")
	w.Write(buf.Bytes())
}
