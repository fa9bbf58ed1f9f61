package imgur

const (
	typeMP4  = "video/mp4"
	typeGIF  = "image/gif"
	typePNG  = "image/png"
	typeJPEG = "image/jpeg"
)

type albumResponse struct {
	Data albumData `json:"data"`
}

type albumData struct {
	Title  string      `json:"title"`
	Images []imageData `json:"images"`
}

type imageResponse struct {
	Data imageData `json:"data"`
}

type imageData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Link        string `json:"link"`
	MP4         string `json:"mp4"`
	GIF         string `json:"gif"`
}
