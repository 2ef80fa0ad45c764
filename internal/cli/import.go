package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia/asistencia-backend-go/internal/pkg/spreadsheet"
	"github.com/spf13/cobra"
)

var (
	importFile  string
	importYear  int
	importMonth int
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a clock-device CSV export for one month",
	Args:  cobra.NoArgs,
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "CSV export to import")
	importCmd.Flags().IntVar(&importYear, "year", 0, "Year to import")
	importCmd.Flags().IntVar(&importMonth, "month", 0, "Month to import (1-12)")
	_ = importCmd.MarkFlagRequired("file")
	_ = importCmd.MarkFlagRequired("year")
	_ = importCmd.MarkFlagRequired("month")
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(importFile)
	if err != nil {
		return err
	}
	defer f.Close()

	events, err := spreadsheet.ReadEvents(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", importFile, err)
	}

	svc, err := openServices(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	source := filepath.Base(importFile)
	result, err := svc.attendance.Import(cmd.Context(), attendance.ImportRequest{
		Year:       importYear,
		Month:      importMonth,
		Events:     events,
		SourceFile: &source,
	})
	if err != nil {
		return err
	}

	return printImportResult(cmd.OutOrStdout(), result)
}
