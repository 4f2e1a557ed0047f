package commands

import (
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RajuPerumal/hall-booking/internal/handler/dto"
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Inspect customer booking history",
}

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every booking with its customer and room",
	RunE:  runCustomersList,
}

var customersShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show all bookings of one customer",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomersShow,
}

func init() {
	customersCmd.AddCommand(customersListCmd)
	customersCmd.AddCommand(customersShowCmd)
	rootCmd.AddCommand(customersCmd)
}

func runCustomersList(cmd *cobra.Command, args []string) error {
	var records []dto.CustomerBookingResponse
	if err := getJSON("/api/customers", &records); err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No bookings yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CUSTOMER\tROOM\tDATE\tSTART\tEND")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.CustomerName, r.RoomName, r.Date, r.StartTime, r.EndTime)
	}
	return w.Flush()
}

func runCustomersShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	var summary dto.CustomerSummaryResponse
	if err := getJSON("/api/customers/"+url.PathEscape(name), &summary); err != nil {
		return err
	}

	fmt.Printf("%s: %d booking(s)\n", name, summary.TotalBookings)
	if summary.TotalBookings == 0 {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BOOKING\tROOM\tDATE\tSTART\tEND")
	for _, r := range summary.Records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			r.BookingID, r.RoomName, r.Date, r.StartTime, r.EndTime)
	}
	return w.Flush()
}
