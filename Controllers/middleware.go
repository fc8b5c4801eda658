package Controllers

import (
	"DentaDesk/Models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// getScopedDB returns the clinic-group-scoped DB set by the middleware, or
// the default DB when the request carries no scope (tests, public routes).
func getScopedDB(c *gin.Context) *gorm.DB {
	db, exists := c.Get("db")
	if !exists {
		return Models.DB
	}

	dbFunc, ok := db.(func(string) *gorm.DB)
	if !ok {
		return Models.DB
	}

	modelName, exists := c.Get("modelName")
	if exists {
		if tableName, ok := modelName.(string); ok {
			return dbFunc(tableName)
		}
	}
	return dbFunc("")
}
