package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like usage
)

// Built-in Specific Colors
var (
	BuiltinNameColor  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BuiltinUsageColor = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
