package entity

// PosterRequest описывает один запуск генерации постера
type PosterRequest struct {
	Title  string `json:"title"`
	Image1 string `json:"image1"`
	Image2 string `json:"image2"`
	Output string `json:"output"`
}

// TextFit — подобранный размер шрифта и разбивка заголовка на строки
type TextFit struct {
	Size     int      `json:"size"`
	Lines    []string `json:"lines"`
	Fallback bool     `json:"fallback,omitempty"`
}
