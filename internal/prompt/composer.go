// Package prompt builds the natural-language requests sent to the generation
// API. Every function is deterministic and side-effect free; field values are
// interpolated as-is with no escaping, matching what the upstream API expects.
package prompt

import "fmt"

// Interior composes the interior-redesign prompt for a room.
func Interior(style, roomName, color, furniture string) string {
	return fmt.Sprintf("%s %s with %s theme and %s", style, roomName, color, furniture)
}

// Render3D composes the 3D-render prompt for a room, including its dimensions
// when known.
func Render3D(style, roomName, dimensions, color, furniture string) string {
	if dimensions == "" {
		return fmt.Sprintf("3D render of a %s %s with %s theme and %s", style, roomName, color, furniture)
	}
	return fmt.Sprintf("3D render of a %s %s (%s) with %s theme and %s", style, roomName, dimensions, color, furniture)
}

// Plan2D composes the 2D floor-plan request from a free-text description. The
// description is forwarded verbatim to the reasoning model.
func Plan2D(description string) string {
	return description
}

// Exterior composes the exterior-render request from a free-text description,
// forwarded verbatim to the image model.
func Exterior(description string) string {
	return description
}
