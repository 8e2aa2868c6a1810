package format

import (
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/soley/admin-cli/internal/models"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// Currency renders an amount in euros the way the dashboard does: "€1,234.50".
func Currency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "€0.00"
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "€" + usPrinter.Sprintf("%.2f", amount)
}

// Date renders a timestamp as "Jan 2, 2006, 03:04 PM"; the zero time renders empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 2, 2006, 03:04 PM")
}

var statusColors = map[string]color.Attribute{
	models.OrderPending:        color.FgYellow,
	models.OrderConfirmed:      color.FgBlue,
	models.OrderPreparing:      color.FgHiYellow,
	models.OrderReady:          color.FgGreen,
	models.OrderOutForDelivery: color.FgMagenta,
	models.OrderDelivered:      color.FgWhite,
	models.OrderCancelled:      color.FgRed,
	models.ContactRead:         color.FgBlue,
	models.ContactReplied:      color.FgGreen,
	models.ContactArchived:     color.FgWhite,
}

// Badge renders a status label, coloured per status when useColors is set.
func Badge(status string, useColors bool) string {
	label := strings.ToUpper(strings.ReplaceAll(status, "-", " "))
	if label == "" {
		label = "UNKNOWN"
	}
	if !useColors {
		return label
	}
	attr, ok := statusColors[status]
	if !ok {
		attr = color.FgWhite
	}
	c := color.New(attr, color.Bold)
	return c.Sprint(label)
}

// Active renders an active flag.
func Active(active, useColors bool) string {
	if active {
		if useColors {
			return color.GreenString("active")
		}
		return "active"
	}
	if useColors {
		return color.RedString("inactive")
	}
	return "inactive"
}

// Truncate shortens s to n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if n <= 3 || len(r) <= n {
		return string(r)
	}
	return string(r[:n-3]) + "..."
}
