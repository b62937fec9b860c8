package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config) {
	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 70
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		` 8888888888P                   888b     d888`,
		`       d88P                    8888b   d8888`,
		`      d88P                     88888b.d88888`,
		`     d88P    .d88b.  88888b.   888Y88888P888  .d88b.  88888b.   .d88b.  888  888`,
		`    d88P    d8P  Y8b 888 "88b  888 Y888P 888 d88""88b 888 "88b d8P  Y8b 888  888`,
		`   d88P     88888888 888  888  888  Y8P  888 888  888 888  888 88888888 888  888`,
		`  d88P      Y8b.     888  888  888   "   888 Y88..88P 888  888 Y8b.     Y88b 888`,
		` d8888888888 "Y8888  888  888  888       888  "Y88P"  888  888  "Y8888   "Y88888`,
		`                                                                              888`,
		`                                                                         Y8b d88P`,
		`                                                                          "Y88P"`,
	}

	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n%s  Personal Finance Dashboard%s\n\n%s\n\n", textColor, banner.ColorReset, hr)

	kvPad := 16
	kvLines := [][2]string{
		{"Version", GetFullVersion()},
		{"Environment", config.Environment},
		{"Backend", config.API.BaseURL},
		{"Storage", config.Storage.Path},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(os.Stderr, "%s  %-*s %s%s\n", textColor, kvPad, kv[0], kv[1], banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n")
}
