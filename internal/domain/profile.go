package domain

import "context"

// Profile is a user profile keyed by the identity provider's stable user ID.
// FavoriteSessionIDs is an append-only ordered list; duplicates are allowed
// and entries are not re-validated after insertion.
type Profile struct {
	ID                 string   `json:"id"`
	DisplayName        string   `json:"display_name"`
	MainEmail          string   `json:"main_email"`
	FavoriteSessionIDs []string `json:"favorite_session_ids"`
}

// ProfileRepository defines the interface for profile storage. Profile
// creation is owned by a collaborating system and is deliberately absent:
// operations here fail when the profile does not exist.
type ProfileRepository interface {
	// GetByID returns the profile with its favorite session keys in
	// insertion order.
	GetByID(ctx context.Context, id string) (*Profile, error)
	// AddFavorite appends sessionID to the profile's favorites without
	// deduplication.
	AddFavorite(ctx context.Context, profileID, sessionID string) error
}

// WishlistService maintains the per-user list of favorite sessions.
type WishlistService interface {
	AddToWishlist(ctx context.Context, userID, sessionKey string) (*Session, error)
	ListWishlist(ctx context.Context, userID string) ([]*Session, error)
}
