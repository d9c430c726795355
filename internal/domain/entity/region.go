package entity

// CandidateArea представляет область-кандидат, похожую на фрагмент трещины
type CandidateArea struct {
	X      int // координата X левого верхнего угла
	Y      int // координата Y левого верхнего угла
	Width  int // ширина области в пикселях
	Height int // высота области в пикселях
	Area   int // площадь компоненты в пикселях
}

// Center возвращает координаты центра области
func (a CandidateArea) Center() (x, y int) {
	return a.X + a.Width/2, a.Y + a.Height/2
}

// Elongation возвращает отношение большей стороны рамки к меньшей.
// Линейные трещины вытянуты, пятна и шум ближе к квадрату.
func (a CandidateArea) Elongation() float64 {
	longer := a.Width
	shorter := a.Height
	if shorter > longer {
		longer, shorter = shorter, longer
	}
	if shorter <= 0 {
		return 0
	}
	return float64(longer) / float64(shorter)
}
