package colors

import "github.com/fatih/color"

var (
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
)

// Labels follow color.NoColor at call time.

func WarningLabel() string { return Yellow("Warning:") }

func OkLabel() string { return Green("OK:") }

func AlertLabel() string { return Red("EMERGENCY:") }
