package handler

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"go-garment-supply/internal/middleware"
	"go-garment-supply/internal/ws"
	"go-garment-supply/pkg/jwt"
)

const requestTimeout = 5 * time.Second

// Deps bundles everything the route table needs.
type Deps struct {
	Auth        *AuthHandler
	Boss        *BossHandler
	Staff       *StaffHandler
	Clothing    *ClothingHandler
	Procurement *ProcurementHandler
	Shipment    *ShipmentHandler
	Production  *ProductionHandler
	Tokens      *jwt.Manager
	Hub         *ws.Hub
}

// Register mounts all routes. Registration and login are the only public
// endpoints; everything else sits behind the bearer-token middleware.
func Register(app *fiber.App, d Deps) {
	app.Use(middleware.Timeout(requestTimeout))

	app.Post("/user", d.Auth.Register)
	app.Post("/user/login", d.Auth.Login)

	auth := middleware.RequireAuth(d.Tokens)

	app.Delete("/user", auth, d.Auth.Deregister)

	app.Post("/boss", auth, d.Boss.Create)
	app.Get("/boss", auth, d.Boss.List)
	app.Get("/boss/:id", auth, d.Boss.Get)
	app.Put("/boss/:id", auth, d.Boss.Update)
	app.Delete("/boss/:id", auth, d.Boss.Delete)

	app.Post("/staff", auth, d.Staff.Create)
	app.Get("/staff", auth, d.Staff.List)
	app.Get("/staff/:id", auth, d.Staff.Get)
	app.Put("/staff/:id", auth, d.Staff.Update)
	app.Delete("/staff/:id", auth, d.Staff.Delete)

	app.Post("/clothing", auth, d.Clothing.Create)
	app.Get("/clothing", auth, d.Clothing.List)
	app.Get("/clothing/:id", auth, d.Clothing.Get)
	app.Put("/clothing/:id", auth, d.Clothing.Update)
	app.Delete("/clothing/:id", auth, d.Clothing.Delete)

	app.Post("/procurement", auth, d.Procurement.Create)
	app.Get("/procurement", auth, d.Procurement.List)
	app.Get("/procurement/:id", auth, d.Procurement.Get)
	app.Put("/procurement/:id", auth, d.Procurement.Update)
	app.Delete("/procurement/:id", auth, d.Procurement.Delete)

	app.Post("/shipment", auth, d.Shipment.Create)
	app.Get("/shipment", auth, d.Shipment.List)
	app.Get("/shipment/:id", auth, d.Shipment.Get)
	app.Put("/shipment/:id", auth, d.Shipment.Update)
	app.Delete("/shipment/:id", auth, d.Shipment.Delete)

	app.Post("/production", auth, d.Production.Create)
	app.Get("/production", auth, d.Production.List)
	app.Get("/production/:id", auth, d.Production.Get)
	app.Put("/production/:id", auth, d.Production.Update)
	app.Delete("/production/:id", auth, d.Production.Delete)
	app.Post("/production/:id/settle", auth, d.Production.Settle)

	// Activity feed.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		d.Hub.Register <- conn
		defer func() { d.Hub.Unregister <- conn }()

		for {
			// Keep alive loop
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
