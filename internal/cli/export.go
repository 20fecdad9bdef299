package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/noteharvester/noteharvester/internal/exporters"
)

// ExportCommand serializes highlights to CSV or plain text.
type ExportCommand struct {
	BookStorePath       string
	AnnotationStorePath string
	Format              string
	OutputPath          string
	BookFilter          string
	Search              string
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.BookStorePath, "book-store", "", "Path to the Apple Books library store directory (auto-detected if not specified)")
	fs.StringVar(&cmd.AnnotationStorePath, "annotation-store", "", "Path to the Apple Books annotation store directory (auto-detected if not specified)")
	fs.StringVar(&cmd.Format, "format", string(exporters.FormatCSV), "Export format: csv (Author;Title;Highlight;Note), csv-flat (Author,Book Title,Quote,Comment) or text")
	fs.StringVar(&cmd.OutputPath, "output", "", "Output file path (stdout if not specified)")
	fs.StringVar(&cmd.BookFilter, "book", "", "Only export books matching this title/author substring")
	fs.StringVar(&cmd.Search, "search", "", "Only export highlights matching this text/note substring")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export Apple Books highlights as CSV or plain text.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # All highlights as book-centric CSV to a file:\n")
		fmt.Fprintf(os.Stderr, "  %s export -output highlights.csv\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # One book's highlights as plain text to stdout:\n")
		fmt.Fprintf(os.Stderr, "  %s export -format text -book \"Moby\"\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	view, library, err := buildView(cmd.BookStorePath, cmd.AnnotationStorePath, cmd.BookFilter, cmd.Search)
	if err != nil {
		return err
	}

	printWarnings(library.Warnings)

	selectAllAnnotations(view)
	selection := view.SelectedAnnotations()

	payload, err := exporters.Render(selection, exporters.Format(cmd.Format))
	if err != nil {
		return err
	}

	if cmd.OutputPath == "" {
		fmt.Print(payload)
		return nil
	}

	if err := exporters.WriteFile(cmd.OutputPath, payload); err != nil {
		return err
	}

	fmt.Printf("✅ Exported %d highlights to %s\n", len(selection), cmd.OutputPath)
	return nil
}
