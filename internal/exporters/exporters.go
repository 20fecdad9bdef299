package exporters

import (
	"fmt"

	"github.com/noteharvester/noteharvester/internal/entities"
)

// Format names an export payload format as exposed on the CLI and HTTP
// boundary.
type Format string

const (
	FormatCSV       Format = "csv"      // book-centric CSV, ';' separated
	FormatCSVFlat   Format = "csv-flat" // annotation-centric CSV, ',' separated
	FormatPlainText Format = "text"     // raw clipboard payload
)

// Render serializes the selection in the requested format.
func Render(items []entities.SelectedAnnotation, format Format) (string, error) {
	switch format {
	case FormatCSV:
		return ExportCSV(items, CSVModeBook)
	case FormatCSVFlat:
		return ExportCSV(items, CSVModeAnnotation)
	case FormatPlainText:
		return ExportPlainText(items), nil
	default:
		return "", fmt.Errorf("unknown export format: %s", format)
	}
}
