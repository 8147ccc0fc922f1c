package core

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}
)

// Vertex is the interleaved layout the renderer uploads: position then
// colour, tightly packed float32s.
type Vertex struct {
	Position [3]float32
	Color    Color
}

// Triangle is a clip-space RGB triangle for smoke tests.
func Triangle() []Vertex {
	return []Vertex{
		{Position: [3]float32{-0.5, -0.5, 0}, Color: ColorRed},
		{Position: [3]float32{0.5, -0.5, 0}, Color: ColorGreen},
		{Position: [3]float32{0, 0.5, 0}, Color: ColorBlue},
	}
}
