package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type countryZone struct {
	Timezone string
	Name     string
}

// countryTimezones maps ISO country codes to their IANA timezone and display name.
var countryTimezones = map[string]countryZone{
	"CO": {Timezone: "America/Bogota", Name: "Colombia"},
	"MX": {Timezone: "America/Mexico_City", Name: "Mexico"},
	"AR": {Timezone: "America/Argentina/Buenos_Aires", Name: "Argentina"},
	"BR": {Timezone: "America/Sao_Paulo", Name: "Brazil"},
	"PE": {Timezone: "America/Lima", Name: "Peru"},
}

// HandleGetTimeByISOCode returns the current wall-clock time for a supported
// country code. Unknown codes are a 404, not a crash.
func HandleGetTimeByISOCode(c *fiber.Ctx) error {
	iso := strings.ToUpper(c.Params("isoCode"))
	zone, ok := countryTimezones[iso]
	if !ok {
		return notFound(c, fmt.Sprintf("Unknown country code %q", iso))
	}

	loc, err := time.LoadLocation(zone.Timezone)
	if err != nil {
		return internalError(c, "Failed to load timezone")
	}
	now := time.Now().In(loc)

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("You are looking at the current time in %s.", zone.Name),
		"time":    now.Format("2006-01-02 15:04:05"),
	})
}
