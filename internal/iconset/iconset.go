// Package iconset holds the fixed table of iOS app icon sizes and the batch
// generator that renders one PNG per entry.
package iconset

// Spec describes one required output image: a file name and the edge length
// of the square in pixels.
type Spec struct {
	Filename string
	Size     int
}

// table is the AppIcon.appiconset layout. Order is the generation order.
var table = [...]Spec{
	{"Icon-App-20x20@1x.png", 20},
	{"Icon-App-20x20@2x.png", 40},
	{"Icon-App-20x20@3x.png", 60},
	{"Icon-App-29x29@1x.png", 29},
	{"Icon-App-29x29@2x.png", 58},
	{"Icon-App-29x29@3x.png", 87},
	{"Icon-App-40x40@1x.png", 40},
	{"Icon-App-40x40@2x.png", 80},
	{"Icon-App-40x40@3x.png", 120},
	{"Icon-App-60x60@2x.png", 120},
	{"Icon-App-60x60@3x.png", 180},
	{"Icon-App-76x76@1x.png", 76},
	{"Icon-App-76x76@2x.png", 152},
	{"Icon-App-83.5x83.5@2x.png", 167},
	{"Icon-App-1024x1024@1x.png", 1024},
}

// Specs returns the icon table in generation order. The returned slice is a
// copy; callers may modify it freely.
func Specs() []Spec {
	out := make([]Spec, len(table))
	copy(out, table[:])
	return out
}
