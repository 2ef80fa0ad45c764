package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/asistencia/asistencia-backend-go/internal/domain/calendar"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var holidaysFile string

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "Manage the holiday calendar",
}

var holidaysLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Create holidays listed in a YAML file",
	Long: `Reads a YAML document of the form

  holidays:
    - date: 2025-01-01
      name: Año Nuevo

and creates every entry. Dates that already exist are skipped.`,
	Args: cobra.NoArgs,
	RunE: runHolidaysLoad,
}

func init() {
	holidaysLoadCmd.Flags().StringVar(&holidaysFile, "file", "", "YAML holiday file")
	_ = holidaysLoadCmd.MarkFlagRequired("file")
	holidaysCmd.AddCommand(holidaysLoadCmd)
}

type holidayFile struct {
	Holidays []calendar.CreateHolidayRequest `yaml:"holidays"`
}

// decodeHolidays parses and validates a holiday seed document.
func decodeHolidays(r io.Reader) ([]calendar.CreateHolidayRequest, error) {
	var doc holidayFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode holidays: %w", err)
	}

	for i := range doc.Holidays {
		if err := doc.Holidays[i].Validate(); err != nil {
			return nil, fmt.Errorf("holiday #%d: %w", i+1, err)
		}
	}
	return doc.Holidays, nil
}

func runHolidaysLoad(cmd *cobra.Command, args []string) error {
	f, err := os.Open(holidaysFile)
	if err != nil {
		return err
	}
	defer f.Close()

	holidays, err := decodeHolidays(f)
	if err != nil {
		return err
	}

	svc, err := openServices(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	out := cmd.OutOrStdout()
	created, skipped := 0, 0
	for _, h := range holidays {
		if _, err := svc.calendar.CreateHoliday(cmd.Context(), h); err != nil {
			if errors.Is(err, calendar.ErrHolidayExists) {
				skipped++
				continue
			}
			return fmt.Errorf("create holiday %s: %w", h.Date, err)
		}
		created++
	}

	fmt.Fprintf(out, "%d holidays created, %d already present\n", created, skipped)
	return nil
}
