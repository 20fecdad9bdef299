package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noteharvester/noteharvester/internal/exporters"
	"github.com/noteharvester/noteharvester/internal/queryview"
)

type ExportRequest struct {
	Format        string   `json:"format" binding:"required"`
	BookIDs       []string `json:"book_ids" binding:"required"`
	AnnotationIDs []string `json:"annotation_ids"`
}

// Export serializes a selection of annotations. An empty annotation_ids list
// selects every annotation of the selected books.
func (controller *LibraryController) Export(c *gin.Context) {
	var request ExportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	library, err := controller.extract()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	view := queryview.NewView(library)
	view.SelectBooks(request.BookIDs)

	annotationIDs := request.AnnotationIDs
	if len(annotationIDs) == 0 {
		for _, annotation := range view.Annotations() {
			annotationIDs = append(annotationIDs, annotation.ID)
		}
	}
	view.SelectAnnotations(annotationIDs)

	payload, err := exporters.Render(view.SelectedAnnotations(), exporters.Format(request.Format))
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"format":  request.Format,
		"payload": payload,
	})
}
