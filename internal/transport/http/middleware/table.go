package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rayou-Ryan/Puissance-4/internal/service/game"
	"github.com/Rayou-Ryan/Puissance-4/pkg/auth"
	"github.com/Rayou-Ryan/Puissance-4/pkg/httputil"
)

const TableKey = "table"

type TableLookup interface {
	Get(tableID string) (*game.Table, bool)
}

// TableMiddleware resolves the caller's table from its signed token and
// stores it in the gin context under TableKey.
func TableMiddleware(tokens *auth.TokenIssuer, tables TableLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract Token (Cookie, Header or Query)
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No table token"})
			return
		}

		// 2. Validate the signature and expiry
		claims, err := tokens.Validate(tokenString)
		if err != nil {
			httputil.ClearTableCookie(c.Writer)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid table token"})
			return
		}

		// 3. The table may have been cleaned up in the meantime
		table, ok := tables.Get(claims.TableID)
		if !ok {
			httputil.ClearTableCookie(c.Writer)
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}

		c.Set(TableKey, table)
		c.Next()
	}
}

// CurrentTable returns the table stored by TableMiddleware.
func CurrentTable(c *gin.Context) *game.Table {
	return c.MustGet(TableKey).(*game.Table)
}
