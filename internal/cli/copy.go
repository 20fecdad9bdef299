package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/noteharvester/noteharvester/internal/exporters"
)

// CopyCommand puts selected highlights on the system clipboard as plain text.
type CopyCommand struct {
	BookStorePath       string
	AnnotationStorePath string
	BookFilter          string
	Search              string
}

func NewCopyCommand() *CopyCommand {
	return &CopyCommand{}
}

func (cmd *CopyCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("copy", flag.ExitOnError)

	fs.StringVar(&cmd.BookStorePath, "book-store", "", "Path to the Apple Books library store directory (auto-detected if not specified)")
	fs.StringVar(&cmd.AnnotationStorePath, "annotation-store", "", "Path to the Apple Books annotation store directory (auto-detected if not specified)")
	fs.StringVar(&cmd.BookFilter, "book", "", "Only copy books matching this title/author substring")
	fs.StringVar(&cmd.Search, "search", "", "Only copy highlights matching this text/note substring")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s copy [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Copy Apple Books highlights to the clipboard as plain text.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *CopyCommand) Run() error {
	view, library, err := buildView(cmd.BookStorePath, cmd.AnnotationStorePath, cmd.BookFilter, cmd.Search)
	if err != nil {
		return err
	}

	printWarnings(library.Warnings)

	selectAllAnnotations(view)
	selection := view.SelectedAnnotations()
	if len(selection) == 0 {
		fmt.Println("No highlights matched; clipboard unchanged")
		return nil
	}

	payload := exporters.ExportPlainText(selection)
	if err := clipboard.WriteAll(payload); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}

	fmt.Printf("✅ Copied %d highlights to clipboard\n", len(selection))
	return nil
}
