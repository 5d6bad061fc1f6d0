package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterior(t *testing.T) {
	got := Interior("Modern", "Kitchen", "white", "island")
	assert.Equal(t, "Modern Kitchen with white theme and island", got)
}

func TestInterior_Deterministic(t *testing.T) {
	first := Interior("Luxury", "Lounge", "navy", "chesterfield sofa")
	second := Interior("Luxury", "Lounge", "navy", "chesterfield sofa")
	assert.Equal(t, first, second)
}

func TestInterior_NoCrossFieldLeakage(t *testing.T) {
	// A value resembling another field must stay in its own template slot.
	got := Interior("white theme and sofa", "Kitchen", "red", "stool")
	assert.Equal(t, "white theme and sofa Kitchen with red theme and stool", got)
}

func TestInterior_EmptyFields(t *testing.T) {
	got := Interior("", "Kitchen", "", "")
	assert.Equal(t, " Kitchen with  theme and ", got)
}

func TestRender3D(t *testing.T) {
	got := Render3D("Minimal", "Bedroom", "4x5", "beige", "platform bed")
	assert.Equal(t, "3D render of a Minimal Bedroom (4x5) with beige theme and platform bed", got)
}

func TestRender3D_NoDimensions(t *testing.T) {
	got := Render3D("Minimal", "Bedroom", "", "beige", "platform bed")
	assert.Equal(t, "3D render of a Minimal Bedroom with beige theme and platform bed", got)
}

func TestPlan2D_PassThrough(t *testing.T) {
	desc := "three bedrooms around a central hallway"
	assert.Equal(t, desc, Plan2D(desc))
}

func TestExterior_PassThrough(t *testing.T) {
	desc := "brick facade with a gabled roof"
	assert.Equal(t, desc, Exterior(desc))
}
