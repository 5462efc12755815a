package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	// Primary colors
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#B45309", // Burnt orange
		Dark:  "#F59E0B",
	}

	SecondaryColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}

	// Status colors
	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#D97706", // Amber
		Dark:  "#FFD54F",
	}

	InfoColor = lipgloss.AdaptiveColor{
		Light: "#17A2B8", // Cyan
		Dark:  "#4DD0E1",
	}

	// Text colors
	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529",
		Dark:  "#F8F9FA",
	}

	TextColor = lipgloss.AdaptiveColor{
		Light: "#495057",
		Dark:  "#E9ECEF",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	}

	SurfaceColor = lipgloss.AdaptiveColor{
		Light: "#F8F9FA",
		Dark:  "#24253A",
	}

	BorderColor = lipgloss.AdaptiveColor{
		Light: "#DEE2E6",
		Dark:  "#3B3C4F",
	}
)

// Rule level colors, ordered from least to most severe
var (
	LevelInformationalColor = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
	LevelLowColor           = lipgloss.AdaptiveColor{Light: "#0EA5E9", Dark: "#38BDF8"}
	LevelMediumColor        = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	LevelHighColor          = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	LevelCriticalColor      = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
)
