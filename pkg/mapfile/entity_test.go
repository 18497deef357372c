package mapfile

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestScannerEntityPropertiesOnly(t *testing.T) {
	src := `{
"classname" "info_player_start"
"origin" "0 0 44"
}`
	sc := newScanner(src)
	e, err := sc.entity()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"classname": "info_player_start",
		"origin":    "0 0 44",
	}, e.Properties)
	require.Empty(t, e.Brushes)
}

func TestScannerEntityWithBrush(t *testing.T) {
	src := `{
"mapversion" "220"
"classname" "worldspawn"
// brush 0
{
( -128 -128 -16 ) ( -128 -126 -16 ) ( -128 -128 -15 ) __TB_empty [ 0 -0.5 0 0 ] [ 0 0 -1 0 ] 0 1 1
( -128 -128 -16 ) ( -128 -126 -16 ) ( -128 -128 -15 ) __TB_empty [ 0 -0.5 0 0 ] [ 0 0 -1 0 ] 0 1 1
}
}`
	wantFace := Face{
		Triangle: [3]mgl64.Vec3{
			{-128, -128, -16},
			{-128, -126, -16},
			{-128, -128, -15},
		},
		TextureName: "__TB_empty",
		AxisU:       mgl64.Vec3{0, -0.5, 0},
		AxisV:       mgl64.Vec3{0, 0, -1},
		Offset:      mgl64.Vec2{0, 0},
		Rotation:    0,
		Scale:       mgl64.Vec2{1, 1},
	}

	sc := newScanner(src)
	e, err := sc.entity()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"mapversion": "220",
		"classname":  "worldspawn",
	}, e.Properties)
	require.Equal(t, []Brush{{Faces: []Face{wantFace, wantFace}}}, e.Brushes)
}
