package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noteharvester/noteharvester/internal/applebooks"
)

// Health reports whether the configured stores are reachable. Unreachable
// stores degrade the status, they do not fail the endpoint.
func (controller *LibraryController) Health(c *gin.Context) {
	extractor, err := applebooks.NewExtractor(controller.bookStorePath, controller.annotationStorePath)
	if err != nil {
		c.IndentedJSON(http.StatusOK, gin.H{"status": "degraded", "error": err.Error()})
		return
	}

	status := "ok"
	stores := gin.H{}
	for store, root := range map[string]string{
		applebooks.StoreBooks:       extractor.BookStorePath(),
		applebooks.StoreAnnotations: extractor.AnnotationStorePath(),
	} {
		if err := applebooks.VerifyStore(store, root); err != nil {
			status = "degraded"
			stores[store] = err.Error()
		} else {
			stores[store] = "ok"
		}
	}

	c.IndentedJSON(http.StatusOK, gin.H{"status": status, "stores": stores})
}
