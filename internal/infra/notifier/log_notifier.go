package notifier

import (
	"context"
	"log/slog"

	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/queries"
)

// LogNotifier writes guest emails to the structured log instead of an SMTP
// gateway. The notification_jobs table keeps the durable record; this is
// the immediate, best-effort copy for operators tailing the log.
type LogNotifier struct {
	hotelName string
}

func NewLogNotifier(hotelName string) commands.BookingNotifier {
	return &LogNotifier{hotelName: hotelName}
}

func (n *LogNotifier) BookingConfirmed(_ context.Context, view *queries.BookingView) {
	slog.Info("sending booking confirmation email",
		"hotel", n.hotelName,
		"to", view.UserEmail,
		"reservation_code", view.ReservationCode,
		"category", view.CategoryName,
		"check_in", view.CheckIn.Format("2006-01-02"),
		"check_out", view.CheckOut.Format("2006-01-02"),
		"rooms", view.RoomsBooked,
		"total_cents", view.TotalPriceCents,
	)
}

func (n *LogNotifier) BookingCancelled(_ context.Context, view *queries.BookingView) {
	slog.Info("sending booking cancellation email",
		"hotel", n.hotelName,
		"to", view.UserEmail,
		"reservation_code", view.ReservationCode,
		"category", view.CategoryName,
		"check_in", view.CheckIn.Format("2006-01-02"),
	)
}
