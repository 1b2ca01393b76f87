package twitter

// apiStatus is one element of the friends timeline payload.
type apiStatus struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	CreatedAt string  `json:"created_at"`
	User      apiUser `json:"user"`
}

type apiUser struct {
	ScreenName      string `json:"screen_name"`
	ProfileImageURL string `json:"profile_image_url"`
}

type apiError struct {
	Error string `json:"error"`
}
