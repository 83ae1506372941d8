package profile

// Owner is the site owner shown on the public page and in the admin
// session header. A singleton: there is exactly one per store.
type Owner struct {
	User   string `json:"user"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// SocialLink maps a platform key to its URL. Platforms are fixed at
// seed time; links are update-only.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}
