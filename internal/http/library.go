package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noteharvester/noteharvester/internal/applebooks"
	"github.com/noteharvester/noteharvester/internal/entities"
)

// LibraryController serves the extracted Apple Books library. Every request
// runs a fresh extraction pass; the stores are tiny compared to annotation
// stores of sync services and each pass opens and closes its own handles.
type LibraryController struct {
	bookStorePath       string
	annotationStorePath string
}

func NewLibraryController(bookStorePath, annotationStorePath string) *LibraryController {
	return &LibraryController{
		bookStorePath:       bookStorePath,
		annotationStorePath: annotationStorePath,
	}
}

func (controller *LibraryController) extract() (*entities.Library, error) {
	extractor, err := applebooks.NewExtractor(controller.bookStorePath, controller.annotationStorePath)
	if err != nil {
		return nil, err
	}
	return extractor.Extract(), nil
}

func warningMessages(warnings []entities.Warning) []gin.H {
	messages := make([]gin.H, 0, len(warnings))
	for _, warning := range warnings {
		messages = append(messages, gin.H{
			"store":   warning.Store,
			"shard":   warning.Shard,
			"message": warning.Message(),
		})
	}
	return messages
}

func (controller *LibraryController) GetBooks(c *gin.Context) {
	library, err := controller.extract()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"books":    library.Books,
		"count":    len(library.Books),
		"warnings": warningMessages(library.Warnings),
	})
}

func (controller *LibraryController) GetStats(c *gin.Context) {
	library, err := controller.extract()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totalAnnotations := 0
	for _, book := range library.Books {
		totalAnnotations += len(book.Annotations)
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"total_books":       len(library.Books),
		"total_annotations": totalAnnotations,
		"shards_skipped":    len(library.Warnings),
	})
}
