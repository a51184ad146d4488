package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"dispatch-console/internal/features/shipments/domain"
)

func renderShipments(w io.Writer, state domain.FetchState) {
	switch state.Presentation() {
	case domain.PresentationError:
		fmt.Fprintf(w, "%s\n", state.Message)
		if len(state.Shipments) == 0 {
			return
		}
		fmt.Fprintln(w, "Showing last loaded shipments:")
	case domain.PresentationEmpty:
		fmt.Fprintln(w, "No shipments found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TRACKING ID\tCUSTOMER\tORIGIN\tDESTINATION\tSTATUS\tETA\tAMOUNT")
	for _, s := range state.Shipments {
		label, err := s.DisplayStatus()
		if err != nil {
			label = domain.DisplayStatus(s.Status)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.TrackingID, s.Customer, s.Origin, s.Destination, label, s.EstimatedDelivery, s.Amount)
	}
	tw.Flush()

	if len(state.Skipped) > 0 {
		fmt.Fprintf(w, "%d order(s) skipped:\n", len(state.Skipped))
		for _, r := range state.Skipped {
			fmt.Fprintf(w, "  #%d %s: %s\n", r.Index, r.OrderID, r.Reason)
		}
	}
}

func renderSummary(w io.Writer, s domain.Summary, p *domain.Projector) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total\t%d\n", s.Total)
	for _, status := range domain.DisplayStatuses() {
		fmt.Fprintf(tw, "%s\t%d\n", status, s.Counts[status])
	}
	fmt.Fprintf(tw, "Delayed\t%d\n", s.Delayed)
	fmt.Fprintf(tw, "Revenue\t%s\n", p.FormatAmount(s.Revenue, ""))
	if s.Unmapped > 0 {
		fmt.Fprintf(tw, "Unmapped\t%d\n", s.Unmapped)
	}
	tw.Flush()
}

func renderSteps(w io.Writer, steps []domain.Step) {
	for _, step := range steps {
		mark := "[ ]"
		if step.Completed {
			mark = "[x]"
		}
		if step.Current {
			fmt.Fprintf(w, "%s %s  <- current\n", mark, step.Label)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", mark, step.Label)
	}
}
