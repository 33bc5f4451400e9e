package models

// Session is the single client-held record identifying the logged-in user.
// It is created on login, overwritten wholesale on profile edits, and removed
// on logout or account deletion. The client trusts it until the server rejects
// a request; no expiry is enforced locally.
type Session struct {
	UserID       int64  `json:"user_id"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profile_image,omitempty"`
	Email        string `json:"email"`
}

// Profile is the user payload returned by the login endpoint.
type Profile struct {
	UserID       Number `json:"user_id"`
	Nickname     string `json:"profile_nickname"`
	ProfileImage string `json:"profile_img_url"`
}

// ProfileUpdate is the payload returned by a successful profile edit.
type ProfileUpdate struct {
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profile_image"`
}
