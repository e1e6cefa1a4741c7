package models

// ProfileConfig mirrors profile.json on disk. Avatar is a path relative to
// the assets directory.
type ProfileConfig struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
}

type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
}
