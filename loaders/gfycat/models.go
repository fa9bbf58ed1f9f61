package gfycat

type gfyResponse struct {
	GfyItem gfyItem `json:"gfyItem"`
}

type gfyItem struct {
	Title             string `json:"title"`
	HasAudio          bool   `json:"hasAudio"`
	MP4URL            string `json:"mp4Url"`
	GifURL            string `json:"gifUrl"`
	Thumb100PosterURL string `json:"thumb100PosterUrl"`
}
