package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/RajuPerumal/hall-booking/internal/handler/dto"
)

var (
	roomName      string
	roomSeats     int
	roomAmenities []string
	roomPrice     float64
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Manage meeting rooms",
}

var roomsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rooms with their bookings",
	RunE:  runRoomsList,
}

var roomsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new meeting room",
	RunE:  runRoomsCreate,
}

func init() {
	roomsCreateCmd.Flags().StringVar(&roomName, "name", "", "Room name (required)")
	roomsCreateCmd.Flags().IntVar(&roomSeats, "seats", 0, "Number of seats (required)")
	roomsCreateCmd.Flags().StringSliceVar(&roomAmenities, "amenity", nil, "Amenity, repeatable (required)")
	roomsCreateCmd.Flags().Float64Var(&roomPrice, "price", 0, "Price per hour")
	_ = roomsCreateCmd.MarkFlagRequired("name")
	_ = roomsCreateCmd.MarkFlagRequired("seats")
	_ = roomsCreateCmd.MarkFlagRequired("amenity")

	roomsCmd.AddCommand(roomsListCmd)
	roomsCmd.AddCommand(roomsCreateCmd)
	rootCmd.AddCommand(roomsCmd)
}

func runRoomsList(cmd *cobra.Command, args []string) error {
	var rooms []dto.RoomWithBookingsResponse
	if err := getJSON("/api/rooms", &rooms); err != nil {
		return err
	}

	if len(rooms) == 0 {
		fmt.Println("No rooms registered.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSEATS\tPRICE/H\tAMENITIES\tBOOKINGS")
	for _, r := range rooms {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%s\t%d\n",
			r.ID, r.RoomName, r.SeatsAvailable, r.PricePerHour,
			strings.Join(r.Amenities, ","), len(r.Bookings),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, r := range rooms {
		for _, b := range r.Bookings {
			fmt.Printf("  room %d: #%d %s %s %s-%s\n",
				r.ID, b.ID, b.CustomerName, b.Date, b.StartTime, b.EndTime)
		}
	}

	return nil
}

func runRoomsCreate(cmd *cobra.Command, args []string) error {
	req := dto.RegisterRoomRequest{
		RoomName:       roomName,
		SeatsAvailable: roomSeats,
		Amenities:      roomAmenities,
		PricePerHour:   &roomPrice,
	}

	var room dto.RoomResponse
	if err := postJSON("/api/rooms", req, &room); err != nil {
		return err
	}

	color.Green("✓ room %d (%s) registered", room.ID, room.RoomName)
	return nil
}
