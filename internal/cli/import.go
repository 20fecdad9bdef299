package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/noteharvester/noteharvester/internal/config"
	"github.com/noteharvester/noteharvester/internal/database"
)

// ImportCommand saves the harvested library into the local database.
type ImportCommand struct {
	BookStorePath       string
	AnnotationStorePath string
	DatabasePath        string
	Verbose             bool
	DryRun              bool
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.BookStorePath, "book-store", "", "Path to the Apple Books library store directory (auto-detected if not specified)")
	fs.StringVar(&cmd.AnnotationStorePath, "annotation-store", "", "Path to the Apple Books annotation store directory (auto-detected if not specified)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file for storing harvested highlights")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would be imported without making changes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Harvest Apple Books highlights into a local database.\n\n")

		if runtime.GOOS == "darwin" {
			fmt.Fprintf(os.Stderr, "On macOS, the Apple Books store directories are automatically detected:\n")
			fmt.Fprintf(os.Stderr, "  - Annotations: ~/Library/Containers/com.apple.iBooksX/Data/Documents/AEAnnotation/\n")
			fmt.Fprintf(os.Stderr, "  - Books: ~/Library/Containers/com.apple.iBooksX/Data/Documents/BKLibrary/\n\n")
		} else {
			fmt.Fprintf(os.Stderr, "NOTE: Apple Books is only available on macOS. You can still import from\n")
			fmt.Fprintf(os.Stderr, "copied store directories using the -annotation-store and -book-store flags.\n\n")
		}

		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ImportCommand) Run() error {
	fmt.Println("📚 Apple Books Import")
	fmt.Println("=====================")

	if cmd.DryRun {
		fmt.Println("🔍 DRY RUN MODE - No changes will be made")
		fmt.Println()
	}

	library, err := extractLibrary(cmd.BookStorePath, cmd.AnnotationStorePath)
	if err != nil {
		return fmt.Errorf("failed to read Apple Books stores: %w", err)
	}

	printWarnings(library.Warnings)

	if len(library.Books) == 0 {
		fmt.Println("ℹ️  No books with highlights found in Apple Books")
		return nil
	}

	totalAnnotations := 0
	for _, book := range library.Books {
		totalAnnotations += len(book.Annotations)
	}
	fmt.Printf("📚 Found %d books with %d total highlights\n", len(library.Books), totalAnnotations)

	if cmd.Verbose {
		fmt.Println("\n=== Books Found ===")
		for i, book := range library.Books {
			fmt.Printf("%d. \"%s\" by %s (%d highlights)\n",
				i+1, book.DisplayTitle(), book.DisplayAuthor(), len(book.Annotations))
		}
	}

	if cmd.DryRun {
		fmt.Println("\n✅ Dry run complete. Use without -dry-run to import.")
		return nil
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	fmt.Printf("\n💾 Saving to database: %s\n", cmd.DatabasePath)

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	var importedBooks, importedAnnotations int
	var importErrors []string

	for i := range library.Books {
		book := &library.Books[i]
		if cmd.Verbose {
			fmt.Printf("  → \"%s\" by %s (%d highlights)...\n",
				book.DisplayTitle(), book.DisplayAuthor(), len(book.Annotations))
		}

		if err := db.SaveBook(book); err != nil {
			importErrors = append(importErrors, fmt.Sprintf("Failed to save \"%s\": %v", book.DisplayTitle(), err))
			continue
		}

		importedBooks++
		importedAnnotations += len(book.Annotations)
	}

	fmt.Println("\n=== Import Summary ===")
	fmt.Printf("📚 Books saved: %d/%d\n", importedBooks, len(library.Books))
	fmt.Printf("📝 Highlights saved: %d\n", importedAnnotations)

	if len(importErrors) > 0 {
		fmt.Printf("\n⚠️  %d errors occurred:\n", len(importErrors))
		for _, errMsg := range importErrors {
			fmt.Printf("  ❌ %s\n", errMsg)
		}
	}

	fmt.Println("\n✅ Import complete!")
	return nil
}
