package ui

import "tagcat/internal/domain"

// Viewer displays a catalog report interactively
type Viewer interface {
	View(report *domain.Report) error
}
