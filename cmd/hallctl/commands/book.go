package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/RajuPerumal/hall-booking/internal/handler/dto"
)

var (
	bookCustomer string
	bookRoomID   int64
	bookDate     string
	bookStart    string
	bookEnd      string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a room for a time slot",
	Long: `Book a room for a half-open time slot [start, end) on one calendar day.

A booking ending at 10:00 does not clash with one starting at 10:00.`,
	RunE: runBook,
}

func init() {
	bookCmd.Flags().StringVar(&bookCustomer, "customer", "", "Customer name (required)")
	bookCmd.Flags().Int64Var(&bookRoomID, "room", 0, "Room id (required)")
	bookCmd.Flags().StringVar(&bookDate, "date", "", "Date, YYYY-MM-DD (required)")
	bookCmd.Flags().StringVar(&bookStart, "start", "", "Start time, HH:MM (required)")
	bookCmd.Flags().StringVar(&bookEnd, "end", "", "End time, HH:MM (required)")
	_ = bookCmd.MarkFlagRequired("customer")
	_ = bookCmd.MarkFlagRequired("room")
	_ = bookCmd.MarkFlagRequired("date")
	_ = bookCmd.MarkFlagRequired("start")
	_ = bookCmd.MarkFlagRequired("end")

	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	req := dto.CreateBookingRequest{
		CustomerName: bookCustomer,
		RoomID:       bookRoomID,
		Date:         bookDate,
		StartTime:    bookStart,
		EndTime:      bookEnd,
	}

	var booking dto.BookingResponse
	if err := postJSON("/api/bookings", req, &booking); err != nil {
		return err
	}

	color.Green("✓ booking %d: room %d on %s, %s-%s",
		booking.ID, booking.RoomID, booking.Date, booking.StartTime, booking.EndTime)
	return nil
}
