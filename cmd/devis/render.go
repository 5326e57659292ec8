package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/diewo77/devis-board/internal/models"
)

func renderBoard(w io.Writer, items []*models.Devis) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAPI\tCLIENT\tCIRCUIT\tFORMULE\tDATES\tPARTICIPANTS\tMONTANT\tSTATUT")
	for _, d := range items {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.APIID, d.Client, d.Circuit, d.Formula, d.Date,
			strings.Join(d.Participants, ", "), d.Amount, d.Status)
	}
	return tw.Flush()
}

// printStats writes one line per counted API call, sorted.
func printStats(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		if mf.GetName() != "devis_apiclient_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			lines = append(lines, fmt.Sprintf("%s %s %s: %.0f",
				labels["method"], labels["route"], labels["code"], m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
