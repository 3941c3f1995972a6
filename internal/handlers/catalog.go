package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hlifeacademy/dna-backend/internal/catalog"
)

// CatalogHandler serves the two inventories. A client may pass ?seed= to
// get a reproducible shuffle of each group's items; without it the groups
// come back in catalog order.
type CatalogHandler struct {
	behavioral catalog.Inventory
	values     catalog.Inventory
}

func NewCatalogHandler(behavioral, values catalog.Inventory) *CatalogHandler {
	return &CatalogHandler{behavioral: behavioral, values: values}
}

func (ch *CatalogHandler) GetBehavioral(c *gin.Context) {
	ch.respond(c, ch.behavioral)
}

func (ch *CatalogHandler) GetValues(c *gin.Context) {
	ch.respond(c, ch.values)
}

func (ch *CatalogHandler) respond(c *gin.Context, inv catalog.Inventory) {
	shuffler := catalog.Shuffler(catalog.IdentityShuffler{})
	if seedStr := c.Query("seed"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		shuffler = catalog.NewRandShuffler(seed)
	}
	RespondOK(c, gin.H{
		"name":   inv.Name,
		"groups": catalog.ShuffledGroups(inv, shuffler),
	})
}
