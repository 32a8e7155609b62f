// Package ui provides the panel components of the admin console.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidth is the fixed width of the navigation sidebar
	SidebarWidth = 22

	// DetailWidthRatio is the denominator for the detail panel width
	// (the panel takes 1/2 of the content area when open)
	DetailWidthRatio = 2

	// TitleHeight is the height of panel titles
	TitleHeight = 1
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 40
)

// FlashDurationSeconds is how long a footer flash stays visible
const FlashDurationSeconds = 3
