// internals/resource/criteria.go
package resource

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CriteriaFromQuery menerjemahkan dua query param yang didukung
// (active, limit) jadi criteria + limit untuk store. Param lain
// diabaikan.
func CriteriaFromQuery(c *fiber.Ctx) (map[string]string, int) {
	criteria := map[string]string{}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		criteria["active"] = v
	}

	limit := 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return criteria, limit
}
