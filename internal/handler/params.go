package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"go-garment-supply/internal/repository"
)

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// parseListParams reads the common list contract from the query string.
// Unparseable numbers fall back to the defaults; malformed timestamps and id
// tokens are dropped rather than failing the request.
func parseListParams(c *fiber.Ctx) repository.ListParams {
	params := repository.ListParams{
		Page:     c.QueryInt("page", 0),
		PageSize: c.QueryInt("pageSize", 0),
		Search:   c.Query("search"),
		BossIDs:  parseIDList(c.Query("bossIds")),
		StaffIDs: parseIDList(c.Query("staffIds")),
	}
	if v := c.Query("startTime"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			params.StartTime = &t
		}
	}
	if v := c.Query("endTime"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			params.EndTime = &t
		}
	}
	return params
}

func parseIDList(s string) []uint {
	if s == "" {
		return nil
	}
	var ids []uint
	for _, part := range strings.Split(s, ",") {
		if n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32); err == nil {
			ids = append(ids, uint(n))
		}
	}
	return ids
}
