package types

// FeedResponse is the slice of the Bluesky getFeed answer the live
// classification endpoint cares about.
type FeedResponse struct {
	Cursor string      `json:"cursor"`
	Feed   []FeedEntry `json:"feed"`
}

type FeedEntry struct {
	Post Post `json:"post"`
}

type Post struct {
	Author Author `json:"author"`
	Record Record `json:"record"`
	URI    string `json:"uri"`
}

type Author struct {
	DID         string `json:"did"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
}

type Record struct {
	CreatedAt string `json:"createdAt"`
	Text      string `json:"text"`
}
