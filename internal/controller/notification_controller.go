package controller

import (
	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/websocket"
)

// INotificationController upgrades admin dashboard connections onto the
// websocket hub. Browsers cannot set an Authorization header on the
// upgrade request, so the access token travels in the query string.
type INotificationController interface {
	RegisterRoutes(r fiber.Router)
}

type notificationController struct {
	hub       *websocket.Hub
	jwtSecret string
}

func NewNotificationController(hub *websocket.Hub, jwtSecret string) INotificationController {
	return &notificationController{
		hub:       hub,
		jwtSecret: jwtSecret,
	}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notifications/v1")
	h.Use("ws", c.upgradeGuard)
	h.Get("ws", fiberws.New(c.serveWs))
}

func (c *notificationController) upgradeGuard(ctx *fiber.Ctx) error {
	if !fiberws.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}

	userId, err := c.authenticate(ctx.Query("token"))
	if err != nil {
		return err
	}

	ctx.Locals("ws_user_id", userId.String())
	return ctx.Next()
}

func (c *notificationController) serveWs(conn *fiberws.Conn) {
	raw, _ := conn.Locals("ws_user_id").(string)
	userId, err := uuid.Parse(raw)
	if err != nil {
		conn.Close()
		return
	}
	websocket.ServeWs(c.hub, conn, userId)
}

func (c *notificationController) authenticate(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, serverutils.NewUnauthorized("missing token")
	}

	claims := &serverutils.AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(c.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, serverutils.NewUnauthorized("invalid or expired token")
	}
	if claims.Role != entity.UserRoleAdmin {
		return uuid.Nil, serverutils.NewForbidden("admin access required")
	}

	userId, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, serverutils.NewUnauthorized("invalid token subject")
	}
	return userId, nil
}
