package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"donation-service/models"
	"donation-service/repositories"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type report struct {
	total     float64
	byCause   []models.CauseTotal
	donations []models.Donation
	all       bool
}

func buildReport(ctx context.Context, repo repositories.IDonationRepository, all bool) (report, error) {
	total, err := repo.TotalDonated(ctx)
	if err != nil {
		return report{}, fmt.Errorf("total donated: %w", err)
	}
	byCause, err := repo.TotalsByCause(ctx)
	if err != nil {
		return report{}, fmt.Errorf("donations by cause: %w", err)
	}

	var donations []models.Donation
	if all {
		donations, err = repo.All(ctx)
	} else {
		donations, err = repo.Recent(ctx, repositories.RecentDonationsLimit)
	}
	if err != nil {
		return report{}, fmt.Errorf("list donations: %w", err)
	}

	return report{total: total, byCause: byCause, donations: donations, all: all}, nil
}

func (r report) Render(w io.Writer) {
	fmt.Fprintf(w, "Total donated: %s\n\n", formatAmount(r.total))

	causes := newTable(w, []string{"Cause", "Total", "Count"})
	for _, ct := range r.byCause {
		causes.Append([]string{string(ct.Cause), formatAmount(ct.TotalAmount), strconv.FormatInt(ct.Count, 10)})
	}
	causes.Render()

	if r.all {
		fmt.Fprintf(w, "\nAll donations (%d)\n", len(r.donations))
	} else {
		fmt.Fprintf(w, "\nMost recent donations (%d)\n", len(r.donations))
	}
	list := newTable(w, []string{"Date", "Name", "Email", "Cause", "Amount"})
	for _, d := range r.donations {
		list.Append([]string{
			d.Date.UTC().Format(time.RFC3339),
			d.Name,
			d.Email,
			string(d.Cause),
			formatAmount(lo.FromPtr(d.Amount)),
		})
	}
	list.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
