package domain

// ProfileView is the composed profile of a user. It is derived on read and never stored.
type ProfileView struct {
	User          User
	Badges        Badges
	Notifications []Notification
}
