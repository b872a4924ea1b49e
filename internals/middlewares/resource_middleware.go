// internals/middlewares/resource_middleware.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// Locals key untuk nama resource yang sedang dioperasikan.
const resourceLocalsKey = "_resource"

// ResourceTag menempelkan nama resource ke context request sebelum
// controller jalan, supaya komponen hilir tidak perlu tahu routing.
// Endpoint non-resource (auth, referential) cukup tidak memasang
// middleware ini.
func ResourceTag(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(resourceLocalsKey, name)
		return c.Next()
	}
}

// ResourceName membaca nama resource dari context; kosong kalau route
// tidak ditandai.
func ResourceName(c *fiber.Ctx) string {
	name, _ := c.Locals(resourceLocalsKey).(string)
	return name
}
