package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/spreadsheet"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	reportYear   int
	reportMonth  int
	reportFormat string
	reportOutput string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the monthly summary",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Print personnel ranked by hours worked",
	Args:  cobra.NoArgs,
	RunE:  runRanking,
}

func init() {
	for _, c := range []*cobra.Command{summaryCmd, rankingCmd} {
		c.Flags().IntVar(&reportYear, "year", 0, "Year to report")
		c.Flags().IntVar(&reportMonth, "month", 0, "Month to report (1-12, omit for the whole year)")
		c.Flags().StringVar(&reportFormat, "format", "table", "Output format: table, csv, xlsx")
		c.Flags().StringVarP(&reportOutput, "output", "o", "", "File to write csv/xlsx output to (xlsx defaults to the export file name)")
		_ = c.MarkFlagRequired("year")
	}
}

func reportPeriod() (attendance.Period, error) {
	month := ""
	if reportMonth != 0 {
		month = strconv.Itoa(reportMonth)
	}
	return attendance.ParsePeriod(strconv.Itoa(reportYear), month)
}

func runSummary(cmd *cobra.Command, args []string) error {
	period, err := reportPeriod()
	if err != nil {
		return err
	}

	svc, err := openServices(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	summary, err := svc.attendance.MonthlySummary(cmd.Context(), period)
	if err != nil {
		return err
	}

	if reportFormat == "table" {
		printSummary(cmd.OutOrStdout(), period, summary)
		return nil
	}
	return writeExport(cmd, spreadsheet.KindSummary, period, func(w io.Writer, f spreadsheet.Format) error {
		return spreadsheet.WriteSummary(w, f, summary.Summary)
	})
}

func runRanking(cmd *cobra.Command, args []string) error {
	period, err := reportPeriod()
	if err != nil {
		return err
	}

	svc, err := openServices(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	ranking, err := svc.attendance.Ranking(cmd.Context(), period)
	if err != nil {
		return err
	}

	if reportFormat == "table" {
		printRanking(cmd.OutOrStdout(), period, ranking)
		return nil
	}
	return writeExport(cmd, spreadsheet.KindRanking, period, func(w io.Writer, f spreadsheet.Format) error {
		return spreadsheet.WriteRanking(w, f, ranking)
	})
}

// writeExport sends csv to stdout unless --output is set; xlsx always goes to a file.
func writeExport(cmd *cobra.Command, kind spreadsheet.Kind, period attendance.Period, write func(io.Writer, spreadsheet.Format) error) error {
	format, err := spreadsheet.ParseFormat(reportFormat)
	if err != nil {
		return fmt.Errorf("unsupported format %q", reportFormat)
	}

	path := reportOutput
	if path == "" && format == spreadsheet.FormatXLSX {
		path = spreadsheet.Filename(kind, format, period)
	}
	if path == "" {
		return write(cmd.OutOrStdout(), format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func printImportResult(w io.Writer, r attendance.ImportResponse) error {
	_, err := fmt.Fprintf(w, "Imported %04d-%02d: %s records for %s personnel (%d events skipped, %d timestamps fell back)\n",
		r.Year, r.Month,
		humanize.Comma(int64(r.RecordsImported)),
		humanize.Comma(int64(r.PersonnelCount)),
		r.EventsSkipped, r.TimestampFallbacks,
	)
	return err
}

func printSummary(w io.Writer, period attendance.Period, summary attendance.MonthlySummary) {
	fmt.Fprintf(w, "Period %s (%d working days)\n", period, summary.WorkingDaysCount)
	fmt.Fprintln(w, "------------------------------------------------------------------")
	fmt.Fprintf(w, "%-8s%-28s%8s%8s%8s  %s\n", "ID", "Name", "Hours", "Absent", "Avg", "Status")
	for _, e := range summary.Summary {
		fmt.Fprintf(w, "%-8s%-28s%8.1f%8d%8.1f  %s\n", e.ID, truncate(e.Name, 27), e.TotalHours, e.DaysAbsent, e.AverageHours, e.Status)
	}
}

func printRanking(w io.Writer, period attendance.Period, ranking []attendance.RankingEntry) {
	fmt.Fprintf(w, "Ranking %s\n", period)
	fmt.Fprintln(w, "--------------------------------------------------")
	for _, e := range ranking {
		fmt.Fprintf(w, "%-6s%-8s%-28s%8.1f h\n", humanize.Ordinal(e.Position), e.ID, truncate(e.Name, 27), e.TotalHours)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
