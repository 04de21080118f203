package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DBKey is the context key under which DatabaseMiddleware stores the gorm
// connection for handlers.
const DBKey = "db"

// DatabaseMiddleware injects the shared database handle into the request
// context so handlers never reach for package globals.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(DBKey, db)
		c.Next()
	}
}

// GetDB returns the database handle stored by DatabaseMiddleware, or nil if
// none was set.
func GetDB(c *gin.Context) *gorm.DB {
	value, exists := c.Get(DBKey)
	if !exists {
		return nil
	}
	db, ok := value.(*gorm.DB)
	if !ok {
		return nil
	}
	return db
}
