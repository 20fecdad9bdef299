package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/noteharvester/noteharvester/internal/applebooks"
)

// ListCommand prints the harvested library to stdout.
type ListCommand struct {
	BookStorePath       string
	AnnotationStorePath string
	Search              string
	Verbose             bool
}

func NewListCommand() *ListCommand {
	return &ListCommand{}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)

	fs.StringVar(&cmd.BookStorePath, "book-store", "", "Path to the Apple Books library store directory (auto-detected if not specified)")
	fs.StringVar(&cmd.AnnotationStorePath, "annotation-store", "", "Path to the Apple Books annotation store directory (auto-detected if not specified)")
	fs.StringVar(&cmd.Search, "search", "", "Filter books by title or author (case-insensitive substring)")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print each book's highlights")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List books with highlights found in Apple Books.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ListCommand) Run() error {
	view, library, err := buildView(cmd.BookStorePath, cmd.AnnotationStorePath, cmd.Search, "")
	if err != nil {
		return err
	}

	printWarnings(library.Warnings)

	books := view.Books()
	if len(books) == 0 {
		fmt.Println("No books with highlights found")
		return nil
	}

	totalAnnotations := 0
	for _, book := range books {
		totalAnnotations += len(book.Annotations)
	}
	fmt.Printf("📚 %d books, %d highlights\n\n", len(books), totalAnnotations)

	for i, book := range books {
		fmt.Printf("%d. \"%s\" by %s (%d highlights)\n",
			i+1, book.DisplayTitle(), book.DisplayAuthor(), len(book.Annotations))

		if cmd.Verbose {
			for _, annotation := range book.Annotations {
				fmt.Printf("   > %s\n", annotation.SelectedText)
				if annotation.Note != nil && *annotation.Note != "" {
					fmt.Printf("     Note: %s\n", *annotation.Note)
				}
				if name := applebooks.StyleName(annotation.ColorCode); name != "" {
					fmt.Printf("     Color: %s\n", name)
				}
			}
			fmt.Println()
		}
	}

	return nil
}
